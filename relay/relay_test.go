package relay

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debug-lab/dbg"
)

// Compile-time proof the relay can be plugged into the dbg facility.
var _ dbg.Sink = (*Relay)(nil)

func TestRelay_WriteChunk_DropsWhenFull(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRelay(logger, "localhost:0", "", NewSession("payment-api"), 2, time.Second)

	// Given a buffer of 2 and no consumer draining it
	r.WriteChunk("one")
	r.WriteChunk("two")
	r.WriteChunk("three")
	r.WriteChunk("four")

	// Then the overflow is counted, not queued
	req.Equal(uint64(2), r.Dropped())
	req.Len(r.chunks, 2)
}

func TestRelay_FrameMapping(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	meta := NewSession("payment-api")
	r := NewRelay(logger, "localhost:0", "", meta, 8, time.Second)

	open := r.openFrame().GetOpen()
	req.Equal(string(meta.ID), open.SessionId)
	req.Equal("payment-api", open.App)
	req.Equal(int32(os.Getpid()), open.Pid)
	req.Equal(meta.StartedAt.UnixNano(), open.StartedAt)

	at := time.Now().UTC()
	first := r.chunkToFrame(chunkFrame{text: "hello", at: at}).GetChunk()
	second := r.chunkToFrame(chunkFrame{text: "world", at: at}).GetChunk()

	// Sequence numbers are monotonically increasing per connection
	req.Equal(uint64(1), first.Seq)
	req.Equal(uint64(2), second.Seq)
	req.Equal("hello", first.Text)
	req.Equal(at.UnixNano(), first.At)
	req.Equal(string(meta.ID), first.SessionId)
}

func TestNewSession_CapturesProcessIdentity(t *testing.T) {
	req := require.New(t)

	session := NewSession("billing-worker")

	req.NotEmpty(session.ID)
	req.Equal("billing-worker", session.App)
	req.Equal(os.Getpid(), session.PID)
	req.False(session.StartedAt.IsZero())

	// Two sessions from the same process never collide
	other := NewSession("billing-worker")
	req.NotEqual(session.ID, other.ID)
}
