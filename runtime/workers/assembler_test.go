package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debug-lab/domain"
	"debug-lab/domain/event"
)

// driveAssembler feeds commands through a worker synchronously and
// returns every event it produced.
func driveAssembler(t *testing.T, maxLineLength int, cmds []domain.Command) []event.Event {
	t.Helper()
	commands := make(chan domain.Command, len(cmds))
	events := make(chan event.Event, 64)
	worker := NewAssemblerWorker(commands, events, slog.Default(), maxLineLength)

	for _, c := range cmds {
		commands <- c
	}
	close(commands)

	require.NoError(t, worker.Run(context.Background()))

	close(events)
	var out []event.Event
	for e := range events {
		out = append(out, e)
	}
	return out
}

func linesOf(events []event.Event) []event.LineAssembled {
	var lines []event.LineAssembled
	for _, e := range events {
		if l, ok := e.Payload.(event.LineAssembled); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestAssemblerWorker_ReassemblesSplitLines(t *testing.T) {
	req := require.New(t)
	meta := domain.Session{ID: "s-1", App: "demo", Host: "box", PID: 42}
	at := time.Now().UTC()

	// Given a line spread over two chunks, with the terminator itself
	// cut between \r and \n
	events := driveAssembler(t, 0, []domain.Command{
		domain.OpenSessionCommand{Meta: meta},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 1, Text: "INFO: first half ", At: at},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 2, Text: "and second half\r\nDEBUG: next\r", At: at},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 3, Text: "\n", At: at},
	})

	req.Equal(event.SessionOpenedType, events[0].Type)

	lines := linesOf(events)
	req.Len(lines, 2)
	req.Equal("INFO: first half and second half", lines[0].Text)
	req.Equal("DEBUG: next", lines[1].Text)

	// Then the session metadata travels with every line
	req.Equal(domain.SessionID("s-1"), lines[0].Session)
	req.Equal("demo", lines[0].App)
	req.Equal("box", lines[0].Host)
	req.Equal(42, lines[0].PID)
	req.Equal(uint64(1), lines[0].Seq)
	req.Equal(uint64(2), lines[1].Seq)
}

func TestAssemblerWorker_SeveralLinesInOneChunk(t *testing.T) {
	req := require.New(t)
	meta := domain.Session{ID: "s-1", App: "demo"}

	events := driveAssembler(t, 0, []domain.Command{
		domain.OpenSessionCommand{Meta: meta},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 1, Text: "one\r\ntwo\r\nthree\r\n"},
	})

	lines := linesOf(events)
	req.Len(lines, 3)
	req.Equal("one", lines[0].Text)
	req.Equal("two", lines[1].Text)
	req.Equal("three", lines[2].Text)
	req.Equal(uint64(3), lines[2].Seq)
}

func TestAssemblerWorker_UnknownSessionIgnored(t *testing.T) {
	req := require.New(t)

	// When a chunk arrives for a session that never opened
	events := driveAssembler(t, 0, []domain.Command{
		domain.AppendChunkCommand{SessionID: "ghost", Seq: 1, Text: "lost\r\n"},
	})

	// Then nothing leaks out of the assembler
	req.Empty(events)
}

func TestAssemblerWorker_CloseFlushesDanglingTail(t *testing.T) {
	req := require.New(t)
	meta := domain.Session{ID: "s-1", App: "demo"}
	at := time.Now().UTC()

	events := driveAssembler(t, 0, []domain.Command{
		domain.OpenSessionCommand{Meta: meta},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 1, Text: "never terminated"},
		domain.CloseSessionCommand{SessionID: "s-1", Received: 1, At: at},
		// A chunk after close must be dropped like an unknown session
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 2, Text: "too late\r\n"},
	})

	lines := linesOf(events)
	req.Len(lines, 1)
	req.Equal("never terminated", lines[0].Text)

	last := events[len(events)-1]
	req.Equal(event.SessionClosedType, last.Type)
	closed := last.Payload.(event.SessionClosed)
	req.Equal(domain.SessionID("s-1"), closed.Session)
	req.Equal(uint64(1), closed.Received)
	req.Equal(at, closed.At)
}

func TestAssemblerWorker_ForcesCutOnOversizedLine(t *testing.T) {
	req := require.New(t)
	meta := domain.Session{ID: "s-1", App: "demo"}

	// Given a 12 char chunk with no terminator and an 8 char ceiling
	events := driveAssembler(t, 8, []domain.Command{
		domain.OpenSessionCommand{Meta: meta},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 1, Text: "abcdefghijkl"},
		domain.CloseSessionCommand{SessionID: "s-1", Received: 1},
	})

	lines := linesOf(events)
	req.Len(lines, 2)
	// Then the head got cut at the ceiling and the rest flushed on close
	req.Equal("abcdefgh", lines[0].Text)
	req.Equal("ijkl", lines[1].Text)
}

func TestAssemblerWorker_CategoryTravelsWithTheChunk(t *testing.T) {
	req := require.New(t)
	meta := domain.Session{ID: "s-1", App: "demo"}

	events := driveAssembler(t, 0, []domain.Command{
		domain.OpenSessionCommand{Meta: meta},
		domain.AppendChunkCommand{SessionID: "s-1", Seq: 1, Text: "request sent\r\n", Category: "net"},
	})

	lines := linesOf(events)
	req.Len(lines, 1)
	req.Equal("net", lines[0].Category)
}
