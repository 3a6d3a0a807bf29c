// Package dbg is a process-wide debug-output facility.
//
// Callers format a message, the package serializes it to a single sink
// as an ordered run of bounded chunks. Build with the debug tag to
// enable it:
//
//	go build -tags debug
//
// Without the tag every public operation compiles to an empty function
// and the linker drops the serializer, the sink machinery and the
// stack capture from the binary.
package dbg

import "io"

// MaxChunkLen bounds a single sink write. Longer messages are split
// into consecutive chunks of exactly this size plus a final remainder.
const MaxChunkLen = 4091

// Sink receives raw chunk text. Implementations must tolerate empty
// chunks and must not assume chunk boundaries align with lines or
// UTF-8 rune boundaries.
type Sink interface {
	WriteChunk(chunk string)
}

// Presenter is invoked after a failed assertion has been emitted.
type Presenter func(short, detail, stack string)

type writerSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink appending every chunk to w.
func NewWriterSink(w io.Writer) Sink { return writerSink{w: w} }

func (s writerSink) WriteChunk(chunk string) {
	_, _ = s.w.Write([]byte(chunk))
}
