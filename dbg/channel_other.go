//go:build !windows

package dbg

import "os"

// Stderr stands in for the debugger transport on non-Windows hosts.
func newDebugChannel() Sink { return NewWriterSink(os.Stderr) }
