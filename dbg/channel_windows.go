//go:build windows

package dbg

import "golang.org/x/sys/windows"

// debugChannel hands chunks to the OS debugger transport so DebugView
// style tools can capture them.
type debugChannel struct{}

func newDebugChannel() Sink { return debugChannel{} }

func (debugChannel) WriteChunk(chunk string) {
	p, err := windows.UTF16PtrFromString(chunk)
	if err != nil {
		// Chunk contains a NUL. The transport cannot carry it, drop it.
		return
	}
	windows.OutputDebugString(p)
}
