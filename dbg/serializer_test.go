package dbg

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordSink keeps every chunk in arrival order.
type recordSink struct {
	mu     sync.Mutex
	chunks []string
}

func (s *recordSink) WriteChunk(chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunk)
}

func (s *recordSink) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.chunks))
	copy(out, s.chunks)
	return out
}

// panicSink blows up on a chosen chunk index.
type panicSink struct {
	calls   int
	panicAt int
	seen    []string
}

func (s *panicSink) WriteChunk(chunk string) {
	s.calls++
	if s.calls == s.panicAt {
		panic("sink is broken")
	}
	s.seen = append(s.seen, chunk)
}

func TestSerializer_Emit_ChunkLengths(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected []int
	}{
		{
			name:     "Empty message still produces one empty chunk",
			length:   0,
			expected: []int{0},
		},
		{
			name:     "Short message stays whole",
			length:   42,
			expected: []int{42},
		},
		{
			name:     "Exactly one chunk boundary",
			length:   MaxChunkLen,
			expected: []int{MaxChunkLen},
		},
		{
			name:     "One byte over the boundary",
			length:   MaxChunkLen + 1,
			expected: []int{MaxChunkLen, 1},
		},
		{
			name:     "Exact multiple has no empty tail",
			length:   2 * MaxChunkLen,
			expected: []int{MaxChunkLen, MaxChunkLen},
		},
		{
			name:     "Ten thousand bytes",
			length:   10000,
			expected: []int{4091, 4091, 1818},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			sink := &recordSink{}
			serializer := NewSerializer(sink)

			// Given a message of the wanted length with varied content
			var sb strings.Builder
			for i := 0; i < tt.length; i++ {
				sb.WriteByte(byte('a' + i%26))
			}
			message := sb.String()

			// When it is emitted
			serializer.Emit(message)

			// Then chunk lengths match and concatenation rebuilds the message
			chunks := sink.recorded()
			lengths := make([]int, len(chunks))
			for i, c := range chunks {
				lengths[i] = len(c)
				req.LessOrEqual(len(c), MaxChunkLen)
			}
			req.Equal(tt.expected, lengths)
			req.Equal(message, strings.Join(chunks, ""))
		})
	}
}

func TestSerializer_EmitLine_AppendsTerminator(t *testing.T) {
	req := require.New(t)
	sink := &recordSink{}
	serializer := NewSerializer(sink)

	serializer.EmitLine("x")
	serializer.EmitLine("")

	req.Equal([]string{"x\r\n", "\r\n"}, sink.recorded())
}

func TestSerializer_EmitLine_TerminatorSurvivesChunking(t *testing.T) {
	req := require.New(t)
	sink := &recordSink{}
	serializer := NewSerializer(sink)

	// A message one byte short of the boundary pushes \n into chunk two
	serializer.EmitLine(strings.Repeat("z", MaxChunkLen-1))

	chunks := sink.recorded()
	req.Len(chunks, 2)
	req.Equal("\n", chunks[1])
	req.True(strings.HasSuffix(strings.Join(chunks, ""), "\r\n"))
}

func TestSerializer_Emit_ConcurrentMessagesNeverInterleave(t *testing.T) {
	req := require.New(t)
	sink := &recordSink{}
	serializer := NewSerializer(sink)

	// Given one distinct multi-chunk message per goroutine
	const writers = 8
	messageLen := 3*MaxChunkLen + 137
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(letter byte) {
			defer wg.Done()
			serializer.Emit(strings.Repeat(string(letter), messageLen))
		}(byte('A' + i))
	}
	wg.Wait()

	// Then every message occupies one contiguous run of chunks
	chunks := sink.recorded()
	seen := make(map[byte]bool)
	var current byte
	var accumulated int
	for _, chunk := range chunks {
		req.NotEmpty(chunk)
		letter := chunk[0]
		req.Equal(strings.Repeat(string(letter), len(chunk)), chunk)
		if letter != current {
			if current != 0 {
				req.Equal(messageLen, accumulated, "message %q was cut by %q", current, letter)
			}
			req.False(seen[letter], "message %q appeared in two runs", letter)
			seen[letter] = true
			current = letter
			accumulated = 0
		}
		accumulated += len(chunk)
	}
	req.Equal(messageLen, accumulated)
	req.Len(seen, writers)
}

func TestSerializer_SetSink_SwapsDestination(t *testing.T) {
	req := require.New(t)
	first := &recordSink{}
	second := &recordSink{}
	serializer := NewSerializer(first)

	serializer.Emit("one")
	serializer.SetSink(second)
	serializer.Emit("two")

	req.Equal([]string{"one"}, first.recorded())
	req.Equal([]string{"two"}, second.recorded())
}

func TestSerializer_Emit_SurvivesPanickingSink(t *testing.T) {
	req := require.New(t)
	sink := &panicSink{panicAt: 2}
	serializer := NewSerializer(sink)

	// When the middle chunk blows up in the sink
	serializer.Emit(strings.Repeat("a", 2*MaxChunkLen+10))

	// Then the remaining chunks were still attempted
	req.Equal(3, sink.calls)
	req.Len(sink.seen, 2)

	// And the lock was released, the serializer is still usable
	replacement := &recordSink{}
	serializer.SetSink(replacement)
	serializer.Emit("after")
	req.Equal([]string{"after"}, replacement.recorded())
}

func TestNewWriterSink_AppendsToWriter(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	serializer := NewSerializer(NewWriterSink(&buf))

	serializer.EmitLine("hello")

	req.Equal("hello\r\n", buf.String())
}
