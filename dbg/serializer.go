package dbg

import "sync"

// Serializer delivers each message to the sink as an ordered run of
// chunks no longer than MaxChunkLen, under one process-wide lock so
// chunks of concurrent messages never interleave.
type Serializer struct {
	mu   sync.Mutex
	sink Sink
}

func NewSerializer(sink Sink) *Serializer {
	return &Serializer{sink: sink}
}

// SetSink swaps the destination. Safe while other goroutines emit.
func (s *Serializer) SetSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// Emit sends message to the sink, holding the lock for the whole run
// of chunks. The final send always happens, so an empty message still
// reaches the sink as one empty chunk and a message of exactly
// MaxChunkLen bytes arrives as a single full chunk.
func (s *Serializer) Emit(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(message) > MaxChunkLen {
		s.send(message[:MaxChunkLen])
		message = message[MaxChunkLen:]
	}
	s.send(message)
}

// EmitLine appends the line terminator before emitting. The terminator
// is \r\n on every host platform, so stream consumers split lines the
// same way everywhere.
func (s *Serializer) EmitLine(message string) {
	s.Emit(message + "\r\n")
}

// send swallows a panicking sink. Writes are diagnostic and
// best-effort; later chunks still get their attempt.
func (s *Serializer) send(chunk string) {
	defer func() {
		_ = recover()
	}()
	s.sink.WriteChunk(chunk)
}
