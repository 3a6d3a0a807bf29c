package domain

import "strings"

type Level string

const (
	LevelTrace  Level = "TRACE"
	LevelDebug  Level = "DEBUG"
	LevelInfo   Level = "INFO"
	LevelWarn   Level = "WARN"
	LevelError  Level = "ERROR"
	LevelFatal  Level = "FATAL"
	LevelAssert Level = "ASSERT"
)

// IsLevelToken reports whether s names a severity. Used to keep level
// prefixes from being mistaken for categories.
func IsLevelToken(s string) bool {
	switch Level(strings.ToUpper(s)) {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAssert:
		return true
	}
	return false
}

// classifyWindow bounds how far into a line markers are searched.
// Severity tokens live at the front of a line, not in its payload.
const classifyWindow = 48

// ClassifyLevel derives a severity from the leading text of a line.
// Lines without a recognizable marker count as DEBUG, which is what a
// raw debug stream mostly carries.
func ClassifyLevel(text string) Level {
	head := text
	if len(head) > classifyWindow {
		head = head[:classifyWindow]
	}
	head = strings.ToUpper(head)

	switch {
	case strings.Contains(head, "ASSERTION FAILED"):
		return LevelAssert
	case strings.Contains(head, "FATAL") || strings.Contains(head, "PANIC"):
		return LevelFatal
	case strings.Contains(head, "ERROR") || strings.Contains(head, "ERR:"):
		return LevelError
	case strings.Contains(head, "WARN"):
		return LevelWarn
	case strings.Contains(head, "INFO"):
		return LevelInfo
	case strings.Contains(head, "TRACE"):
		return LevelTrace
	default:
		return LevelDebug
	}
}
