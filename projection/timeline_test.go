package projection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"debug-lab/domain"
	"debug-lab/domain/event"
)

func entryReady(session, text string, at time.Time) event.EntryReady {
	return event.EntryReady{Entry: domain.Entry{
		ID:      uuid.New(),
		Session: domain.SessionID(session),
		App:     "payment-api",
		Text:    text,
		At:      at,
	}}
}

func TestTimeline_Consume_EntryReady(t *testing.T) {
	timeline := NewTimeline(10)
	ctx := context.Background()

	evt1 := entryReady("s-1", "Connecting to broker", time.Now())
	evt2 := entryReady("s-2", "Connection established", time.Now().Add(time.Second))

	err := timeline.Consume(ctx, evt1)
	require.NoError(t, err)
	err = timeline.Consume(ctx, evt2)
	require.NoError(t, err)

	entries := timeline.Recent()
	require.Len(t, entries, 2)
	require.Equal(t, "Connecting to broker", entries[0].Text)
	require.Equal(t, "Connection established", entries[1].Text)
}

func TestTimeline_Consume_KeepsOnlyLatest(t *testing.T) {
	timeline := NewTimeline(3)
	ctx := context.Background()

	for i, text := range []string{"one", "two", "three", "four", "five"} {
		evt := entryReady("s-1", text, time.Now().Add(time.Duration(i)*time.Second))
		require.NoError(t, timeline.Consume(ctx, evt))
	}

	entries := timeline.Recent()
	require.Len(t, entries, 3)
	require.Equal(t, "three", entries[0].Text)
	require.Equal(t, "five", entries[2].Text)
}

func TestTimeline_Consume_IgnoresSessionEvents(t *testing.T) {
	timeline := NewTimeline(10)
	ctx := context.Background()

	opened := event.SessionOpened{Session: domain.Session{ID: "s-1", App: "payment-api"}}
	require.NoError(t, timeline.Consume(ctx, opened))

	require.Empty(t, timeline.Recent())
}
