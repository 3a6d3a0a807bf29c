//go:build debug

package dbg

import (
	"fmt"
	"os"
	"runtime"
)

// Enabled reports whether the debug build tag was set.
const Enabled = true

var (
	std                 = NewSerializer(newDebugChannel())
	presenter Presenter = stderrPresenter
	stackText           = callStack
)

const (
	failureBanner = "====== Assertion Failed ======"
	shortBanner   = "====== Message ======"
	detailBanner  = "====== Detail ======"
)

// SetSink redirects all debug output, e.g. to a relay.Relay.
func SetSink(sink Sink) { std.SetSink(sink) }

// SetPresenter replaces the failed-assertion presentation. Nil
// disables presentation entirely.
func SetPresenter(p Presenter) { presenter = p }

// Write sends the textual form of v, prefixed with "category:" when a
// category is supplied.
func Write(v any, category ...string) { std.Emit(compose(v, category)) }

// WriteLine sends the textual form of v followed by the line
// terminator.
func WriteLine(v any, category ...string) { std.EmitLine(compose(v, category)) }

// WriteIf sends only when cond holds.
func WriteIf(cond bool, v any, category ...string) {
	if cond {
		Write(v, category...)
	}
}

// WriteLineIf sends a full line only when cond holds.
func WriteLineIf(cond bool, v any, category ...string) {
	if cond {
		WriteLine(v, category...)
	}
}

// Assert emits a failure banner and invokes the presenter when cond is
// false. The trailing strings are the short message and the detail,
// both optional.
func Assert(cond bool, msgAndDetail ...string) {
	if cond {
		return
	}
	var short, detail string
	if len(msgAndDetail) > 0 {
		short = msgAndDetail[0]
	}
	if len(msgAndDetail) > 1 {
		detail = msgAndDetail[1]
	}
	fail(short, detail)
}

// Assertf is Assert with a Sprintf-built detail message. A malformed
// format ends up verbatim in the banner, fmt marks it in-band.
func Assertf(cond bool, msg, detailFormat string, args ...any) {
	if cond {
		return
	}
	fail(msg, fmt.Sprintf(detailFormat, args...))
}

// Fail reports an unconditional failure.
func Fail(msg string, detail ...string) {
	var d string
	if len(detail) > 0 {
		d = detail[0]
	}
	fail(msg, d)
}

func fail(short, detail string) {
	stack, err := stackText()
	if err != nil {
		stack = ""
	}
	// One EmitLine call keeps the whole banner contiguous at the sink.
	std.EmitLine(composeFailure(short, detail, stack))
	if presenter != nil {
		presenter(short, detail, stack)
	}
}

func composeFailure(short, detail, stack string) string {
	return failureBanner + "\r\n" +
		shortBanner + "\r\n" + short + "\r\n" +
		detailBanner + "\r\n" + detail + "\r\n" +
		stack
}

func compose(v any, category []string) string {
	msg := stringify(v)
	if len(category) == 0 {
		return msg
	}
	return category[0] + ":" + msg
}

// stringify keeps strings as-is and renders nil as empty so callers
// can pass optional values straight through.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

// callStack grows the buffer until runtime.Stack fits the whole trace.
func callStack() (string, error) {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return string(buf[:n]), nil
		}
		buf = make([]byte, 2*len(buf))
	}
}

func stderrPresenter(short, _, _ string) {
	fmt.Fprintf(os.Stderr, "assertion failed: %s\n", short)
}
