package workers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"debug-lab/contract"
	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/redact"
)

var _ contract.Worker = (*ScrubWorker)(nil)

// ScrubWorker turns assembled lines into entries: secrets masked,
// language detected, severity classified. Several instances share the
// raw channel, every event is self-contained.
type ScrubWorker struct {
	redactor      redact.Redactor
	rawChan       chan event.Event
	events        chan event.Event
	telemetryChan chan event.Event
	log           *slog.Logger
}

func NewScrubWorker(redactor redact.Redactor,
	rawChan, events, telemetryChan chan event.Event,
	log *slog.Logger) *ScrubWorker {
	return &ScrubWorker{
		redactor: redactor,
		rawChan:  rawChan, events: events,
		telemetryChan: telemetryChan, log: log,
	}
}

func (w ScrubWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.rawChan:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			switch evt := e.Payload.(type) {
			case event.LineAssembled:
				select {
				case <-ctx.Done():
					w.log.Debug("Stopping worker")
					return ctx.Err()
				case w.events <- w.toEntryEvent(evt):
				}
			default:
				// Session open/close travel through untouched
				select {
				case <-ctx.Done():
					w.log.Debug("Stopping worker")
					return ctx.Err()
				case w.events <- e:
				}
			}
		}
	}
}

func (w ScrubWorker) toEntryEvent(evt event.LineAssembled) event.Event {
	category, text := evt.Category, evt.Text
	if category == "" {
		category, text = splitCategory(text)
	}

	info := whatlanggo.Detect(text)
	langCode := info.Lang.Iso6391()

	scrubbed, markers := w.redactor.Redact(text)
	for _, marker := range markers {
		w.reportHit(marker, evt.Session)
	}

	return event.Event{
		Type:      event.EntryReadyType,
		CreatedAt: time.Now().UTC(),
		Payload: event.EntryReady{
			Entry: domain.Entry{
				ID:       uuid.New(),
				Session:  evt.Session,
				App:      evt.App,
				Host:     evt.Host,
				PID:      evt.PID,
				Category: category,
				Level:    domain.ClassifyLevel(evt.Text),
				Lang:     langCode,
				Text:     scrubbed,
				Redacted: len(markers) > 0,
				Seq:      evt.Seq,
				At:       evt.At,
			}}}
}

func (w ScrubWorker) reportHit(marker string, session domain.SessionID) {
	select {
	case w.telemetryChan <- event.New(event.RedactionHitType, event.RedactionHit{Marker: marker, Session: session}):
	default:
		w.log.Debug("Observability telemetry event lost")
	}
}

// maxCategoryLen keeps arbitrary prefixed text from being taken for a
// category.
const maxCategoryLen = 32

// splitCategory recognizes the "category:rest" rendering used by
// writers. The prefix qualifies only when it is short, starts a line,
// carries no spaces and is not itself a severity token.
func splitCategory(line string) (string, string) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 || idx > maxCategoryLen {
		return "", line
	}
	prefix := line[:idx]
	for _, r := range prefix {
		if !isCategoryRune(r) {
			return "", line
		}
	}
	if domain.IsLevelToken(prefix) {
		return "", line
	}
	return prefix, line[idx+1:]
}

func isCategoryRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.':
		return true
	default:
		return false
	}
}
