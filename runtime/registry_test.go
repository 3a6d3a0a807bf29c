package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"debug-lab/domain"
	"debug-lab/domain/event"
)

type tailStub struct {
	id string
}

func (s tailStub) Consume(ctx context.Context, e event.StreamEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Session_One_Viewer(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	viewerID := uuid.NewString()
	sessionID := domain.SessionID("s-1")
	sink := tailStub{id: "tail-1"}

	// Given no viewer is connected
	// And no session is watched
	req.Empty(registry.viewers)
	req.Empty(registry.sessionViewers)

	// When a viewer subscribes a session
	registry.Subscribe(viewerID, sessionID, sink)

	// Then
	req.Len(registry.viewers, 1)
	req.Equal(sink, registry.viewers[viewerID])

	req.Len(registry.sessionViewers, 1)
	req.Contains(registry.sessionViewers[sessionID], viewerID)

	req.Len(registry.GetSinksForSession(sessionID), 1)
	req.Contains(registry.GetSinksForSession(sessionID), sink)
}

func TestRegistry_Subscribe_One_Session_Multiple_Viewers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	viewerID1 := uuid.NewString()
	viewerID2 := uuid.NewString()
	sessionID := domain.SessionID("s-1")
	sink1 := tailStub{id: "tail-1"}
	sink2 := tailStub{id: "tail-2"}

	// When viewers subscribe a session
	registry.Subscribe(viewerID1, sessionID, sink1)
	registry.Subscribe(viewerID2, sessionID, sink2)

	// Then
	req.Len(registry.viewers, 2)
	req.Len(registry.sessionViewers[sessionID], 2)

	req.Len(registry.GetSinksForSession(sessionID), 2)
	req.Contains(registry.GetSinksForSession(sessionID), sink1)
}

func TestRegistry_Unsubscribe_One_Session_One_Viewer(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	viewerID := uuid.NewString()
	sessionID := domain.SessionID("s-1")
	sink := tailStub{id: "tail-1"}

	// Given a viewer subscribes a session
	registry.Subscribe(viewerID, sessionID, sink)

	// When the viewer unsubscribes
	registry.Unsubscribe(viewerID, sessionID)

	// Then no viewer is left
	// And the session entry is gone
	req.Empty(registry.viewers)
	req.Empty(registry.sessionViewers)

	// And no sink is resolved for the session
	req.Nil(registry.GetSinksForSession(sessionID))
}

func TestRegistry_Unsubscribe_One_Session_Multiple_Viewers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	viewerID1 := uuid.NewString()
	viewerID2 := uuid.NewString()
	sessionID := domain.SessionID("s-1")
	sink1 := tailStub{id: "tail-1"}
	sink2 := tailStub{id: "tail-2"}

	// When viewers subscribe a session
	registry.Subscribe(viewerID1, sessionID, sink1)
	registry.Subscribe(viewerID2, sessionID, sink2)

	// When one viewer unsubscribes
	registry.Unsubscribe(viewerID1, sessionID)

	// Then only one viewer is left
	req.Len(registry.viewers, 1)
	req.Len(registry.sessionViewers[sessionID], 1)

	req.Len(registry.GetSinksForSession(sessionID), 1)
	req.Contains(registry.GetSinksForSession(sessionID), sink2)
}

func TestRegistry_AllSessions_Wildcard(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	wildcardViewer := uuid.NewString()
	focusedViewer := uuid.NewString()
	wildcard := tailStub{id: "tail-all"}
	focused := tailStub{id: "tail-one"}

	// Given a viewer watching everything and one watching a session
	registry.Subscribe(wildcardViewer, domain.AllSessions, wildcard)
	registry.Subscribe(focusedViewer, "s-1", focused)

	// Then the watched session resolves both sinks
	sinks := registry.GetSinksForSession("s-1")
	req.Len(sinks, 2)
	req.Contains(sinks, wildcard)
	req.Contains(sinks, focused)

	// And an unwatched session still reaches the wildcard viewer
	sinks = registry.GetSinksForSession("s-2")
	req.Len(sinks, 1)
	req.Contains(sinks, wildcard)
}

func TestRegistry_AllSessions_NoDoubleDelivery(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	viewerID := uuid.NewString()
	sink := tailStub{id: "tail-1"}

	// Given the same viewer watching one session and the wildcard
	registry.Subscribe(viewerID, "s-1", sink)
	registry.Subscribe(viewerID, domain.AllSessions, sink)

	// Then its sink is resolved only once
	req.Len(registry.GetSinksForSession("s-1"), 1)
}
