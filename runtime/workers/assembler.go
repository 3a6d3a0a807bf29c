package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"debug-lab/contract"
	"debug-lab/domain"
	"debug-lab/domain/event"
)

// Ensure *AssemblerWorker implements the contract.Worker interface at compile time.
// This prevents "type mismatch" errors from appearing late in other packages
// and acts as a static assertion of our architectural rules.
var _ contract.Worker = (*AssemblerWorker)(nil)

// lineBuffer holds the per-session reassembly state. Chunks arrive in
// stream order, so a single goroutine owning all buffers needs no lock.
type lineBuffer struct {
	meta    domain.Session
	pending strings.Builder
	seq     uint64
}

// AssemblerWorker rebuilds logical lines out of raw chunks. The wire
// cuts messages at the chunk boundary, not at the line boundary, so a
// line can span chunks and a chunk can carry several lines.
type AssemblerWorker struct {
	buffers       map[domain.SessionID]*lineBuffer
	commands      chan domain.Command
	events        chan event.Event
	log           *slog.Logger
	maxLineLength int
}

func NewAssemblerWorker(
	commands chan domain.Command,
	events chan event.Event,
	log *slog.Logger,
	maxLineLength int) *AssemblerWorker {
	return &AssemblerWorker{
		buffers:       make(map[domain.SessionID]*lineBuffer),
		commands:      commands,
		events:        events,
		log:           log,
		maxLineLength: maxLineLength,
	}
}

func (w *AssemblerWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.handle(ctx, cmd); err != nil {
				return err
			}
		}
	}
}

func (w *AssemblerWorker) handle(ctx context.Context, cmd domain.Command) error {
	switch c := cmd.(type) {
	case domain.OpenSessionCommand:
		w.buffers[c.Meta.ID] = &lineBuffer{meta: c.Meta}
		return w.emit(ctx, event.New(event.SessionOpenedType, event.SessionOpened{Session: c.Meta}))

	case domain.AppendChunkCommand:
		buf, ok := w.buffers[cmd.Session()]
		if !ok {
			w.log.Debug(fmt.Sprintf("Session %s doesn't exist, chunk ignored", cmd.Session()))
			return nil
		}
		return w.append(ctx, buf, c)

	case domain.CloseSessionCommand:
		buf, ok := w.buffers[cmd.Session()]
		if ok {
			// Whatever never got its terminator still becomes a line
			if err := w.flush(ctx, buf, time.Now().UTC()); err != nil {
				return err
			}
			delete(w.buffers, cmd.Session())
		}
		return w.emit(ctx, event.New(event.SessionClosedType, event.SessionClosed{
			Session:  cmd.Session(),
			Received: c.Received,
			At:       c.At,
		}))
	}
	return nil
}

// append pushes chunk text into the session buffer and emits one event
// per completed line. A line that never terminates is cut at
// maxLineLength so one broken emitter cannot grow a buffer forever.
func (w *AssemblerWorker) append(ctx context.Context, buf *lineBuffer, c domain.AppendChunkCommand) error {
	buf.pending.WriteString(c.Text)

	text := buf.pending.String()
	for {
		idx := strings.Index(text, "\r\n")
		if idx < 0 {
			break
		}
		line := text[:idx]
		text = text[idx+2:]
		if err := w.emit(ctx, w.toLineEvent(buf, line, c)); err != nil {
			return err
		}
	}

	for w.maxLineLength > 0 && len(text) >= w.maxLineLength {
		line := text[:w.maxLineLength]
		text = text[w.maxLineLength:]
		w.log.Debug(fmt.Sprintf("Session %s exceeded max line length, forcing cut", buf.meta.ID))
		if err := w.emit(ctx, w.toLineEvent(buf, line, c)); err != nil {
			return err
		}
	}

	buf.pending.Reset()
	buf.pending.WriteString(text)
	return nil
}

// flush turns a dangling unterminated tail into a final line.
func (w *AssemblerWorker) flush(ctx context.Context, buf *lineBuffer, at time.Time) error {
	tail := buf.pending.String()
	buf.pending.Reset()
	if tail == "" {
		return nil
	}
	return w.emit(ctx, w.toLineEvent(buf, tail, domain.AppendChunkCommand{
		SessionID: string(buf.meta.ID),
		At:        at,
	}))
}

func (w *AssemblerWorker) toLineEvent(buf *lineBuffer, line string, c domain.AppendChunkCommand) event.Event {
	buf.seq++
	return event.New(event.LineAssembledType, event.LineAssembled{
		Session:  buf.meta.ID,
		App:      buf.meta.App,
		Host:     buf.meta.Host,
		PID:      buf.meta.PID,
		Seq:      buf.seq,
		Text:     line,
		Category: c.Category,
		At:       c.At,
	})
}

func (w *AssemblerWorker) emit(ctx context.Context, evt event.Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case w.events <- evt:
		return nil
	}
}
