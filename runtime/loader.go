// Package runtime handles the infrastructure-level tasks like loading configuration and files.
package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"debug-lab/errors"
)

// RulesData carries the result of the loading process including metadata for logging.
type RulesData struct {
	Markers []string
	Kinds   []string
}

// RulesLoader is responsible for reading and parsing secret markers from embedded files.
type RulesLoader struct {
	fs embed.FS
}

// NewRulesLoader creates a new instance of RulesLoader with the provided embedded filesystem.
func NewRulesLoader(f embed.FS) *RulesLoader {
	return &RulesLoader{fs: f}
}

// LoadAll scans the given directory path in the embedded FS, identifying .txt files
// as marker dictionaries and parsing their contents into a unique list of markers.
// Lines starting with '#' are commentary, not markers.
func (l *RulesLoader) LoadAll(path string) (*RulesData, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	var kinds []string
	uniqueMarkers := make(map[string]struct{})

	for _, entry := range entries {
		// We only process files, skipping subdirectories
		if entry.IsDir() {
			continue
		}

		// Track the rule kind based on the filename (e.g., "credentials.txt" -> "credentials")
		kind := strings.TrimSuffix(entry.Name(), ".txt")
		kinds = append(kinds, kind)

		// Read the file content
		data, err := l.fs.ReadFile(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// Use a scanner to handle different line endings (\n vs \r\n) correctly
		// ⚠️Don't use strings.Split
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			uniqueMarkers[line] = struct{}{}
		}

		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueMarkers) == 0 {
		return nil, errors.ErrEmptyRules
	}

	// Convert the map of unique markers into a slice
	markers := make([]string, 0, len(uniqueMarkers))
	for m := range uniqueMarkers {
		markers = append(markers, m)
	}

	return &RulesData{
		Markers: markers,
		Kinds:   kinds,
	}, nil
}
