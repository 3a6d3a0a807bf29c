package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/redact"
)

// driveScrub pushes raw events through a worker synchronously and
// returns the scrubbed stream.
func driveScrub(t *testing.T, markers []string, raw []event.Event, telemetryChan chan event.Event) []event.Event {
	t.Helper()
	log := slog.Default()
	redactor, err := redact.NewRedactor(markers, '*', log)
	require.NoError(t, err)

	rawChan := make(chan event.Event, len(raw))
	events := make(chan event.Event, 64)
	worker := NewScrubWorker(redactor, rawChan, events, telemetryChan, log)

	for _, e := range raw {
		rawChan <- e
	}
	close(rawChan)

	require.NoError(t, worker.Run(context.Background()))

	close(events)
	var out []event.Event
	for e := range events {
		out = append(out, e)
	}
	return out
}

func TestScrubWorker_MasksSecretsAndReportsHit(t *testing.T) {
	req := require.New(t)
	telemetryChan := make(chan event.Event, 4)

	at := time.Now().UTC()
	raw := event.New(event.LineAssembledType, event.LineAssembled{
		Session: "s-1", App: "demo", Host: "box", PID: 42, Seq: 7,
		Text: "connecting with password hunter2 to the replica",
		At:   at,
	})

	out := driveScrub(t, []string{"password"}, []event.Event{raw}, telemetryChan)

	req.Len(out, 1)
	req.Equal(event.EntryReadyType, out[0].Type)
	entry := out[0].Payload.(event.EntryReady).Entry

	// Then the marker stays readable and the value behind it is gone
	req.Equal("connecting with password ******* to the replica", entry.Text)
	req.True(entry.Redacted)
	req.Equal(domain.SessionID("s-1"), entry.Session)
	req.Equal("demo", entry.App)
	req.Equal(uint64(7), entry.Seq)
	req.Equal(at, entry.At)
	req.Equal(domain.LevelDebug, entry.Level)

	// And observability learned which rule fired, not what it hid
	select {
	case e := <-telemetryChan:
		req.Equal(event.RedactionHitType, e.Type)
		hit := e.Payload.(event.RedactionHit)
		req.Equal("password", hit.Marker)
		req.Equal(domain.SessionID("s-1"), hit.Session)
	default:
		req.Fail("Expected a redaction hit on the telemetry channel")
	}
}

func TestScrubWorker_ClassifiesBeforeScrubbing(t *testing.T) {
	req := require.New(t)

	raw := event.New(event.LineAssembledType, event.LineAssembled{
		Session: "s-1",
		Text:    "ERROR: api_key sk-none rejected by upstream",
	})

	// Given a marker that would rewrite the text
	out := driveScrub(t, []string{"api_key"}, []event.Event{raw}, make(chan event.Event, 1))

	entry := out[0].Payload.(event.EntryReady).Entry
	// Then the severity comes from the original line
	req.Equal(domain.LevelError, entry.Level)
	req.True(entry.Redacted)
}

func TestScrubWorker_SplitsCategoryFromPlainLines(t *testing.T) {
	req := require.New(t)

	raw := event.New(event.LineAssembledType, event.LineAssembled{
		Session: "s-1",
		Text:    "net:request sent to 10.0.0.1",
	})

	out := driveScrub(t, []string{"password"}, []event.Event{raw}, make(chan event.Event, 1))

	entry := out[0].Payload.(event.EntryReady).Entry
	req.Equal("net", entry.Category)
	req.Equal("request sent to 10.0.0.1", entry.Text)
}

func TestScrubWorker_KeepsExplicitCategory(t *testing.T) {
	req := require.New(t)

	// Given the writer already named a category
	raw := event.New(event.LineAssembledType, event.LineAssembled{
		Session:  "s-1",
		Category: "ui",
		Text:     "db:looks like a prefix but is payload",
	})

	out := driveScrub(t, []string{"password"}, []event.Event{raw}, make(chan event.Event, 1))

	entry := out[0].Payload.(event.EntryReady).Entry
	// Then the text is left alone
	req.Equal("ui", entry.Category)
	req.Equal("db:looks like a prefix but is payload", entry.Text)
}

func TestScrubWorker_SessionEventsPassThrough(t *testing.T) {
	req := require.New(t)

	opened := event.New(event.SessionOpenedType, event.SessionOpened{
		Session: domain.Session{ID: "s-1", App: "demo"},
	})

	out := driveScrub(t, []string{"password"}, []event.Event{opened}, make(chan event.Event, 1))

	req.Len(out, 1)
	req.Equal(event.SessionOpenedType, out[0].Type)
	req.Equal(opened.Payload, out[0].Payload)
}

func TestSplitCategory(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		category string
		rest     string
	}{
		{"simple prefix", "net:request sent", "net", "request sent"},
		{"dotted prefix", "net.http:GET /health", "net.http", "GET /health"},
		{"severity token is not a category", "DEBUG: engine ready", "", "DEBUG: engine ready"},
		{"lowercase severity rejected too", "info: engine ready", "", "info: engine ready"},
		{"space disqualifies the prefix", "this is: not a category", "", "this is: not a category"},
		{"leading colon", ":empty", "", ":empty"},
		{"no colon at all", "just a line", "", "just a line"},
		{"overlong prefix", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa:x", "", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa:x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			category, rest := splitCategory(tt.line)
			req.Equal(tt.category, category)
			req.Equal(tt.rest, rest)
		})
	}
}
