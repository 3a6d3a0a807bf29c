//go:build !debug

package dbg

// Enabled reports whether the debug build tag was set.
const Enabled = false

// Every operation compiles to an empty body here. Nothing references
// the serializer, the default channel or the stack capture, so the
// linker leaves them out of release binaries.

func SetSink(sink Sink) {}

func SetPresenter(p Presenter) {}

func Write(v any, category ...string) {}

func WriteLine(v any, category ...string) {}

func WriteIf(cond bool, v any, category ...string) {}

func WriteLineIf(cond bool, v any, category ...string) {}

func Assert(cond bool, msgAndDetail ...string) {}

func Assertf(cond bool, msg, detailFormat string, args ...any) {}

func Fail(msg string, detail ...string) {}
