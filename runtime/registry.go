package runtime

import (
	"sync"

	"debug-lab/contract"
	"debug-lab/domain"
)

type Set map[string]struct{}

type Registry struct {
	mu             sync.RWMutex
	viewers        map[string]contract.EventSink // map viewer -> Sink
	sessionViewers map[domain.SessionID]Set      // map session to viewers
}

func NewRegistry() *Registry {
	return &Registry{
		viewers:        make(map[string]contract.EventSink),
		sessionViewers: make(map[domain.SessionID]Set),
	}
}

// GetSinksForSession retrieves all active tail channels for a specific
// session. It performs a two-step lookup:
// 1. Identifies viewer IDs watching the session via sessionViewers,
// merged with viewers watching AllSessions.
// 2. Resolves those IDs into actual EventSinks using the viewers map.
//
// A viewer connection (Sink) is managed in a single place even when it
// watches several sessions. Returns nil if nobody watches the session.
func (r *Registry) GetSinksForSession(sessionID domain.SessionID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activeSinks []contract.EventSink
	seen := make(Set)
	collect := func(id domain.SessionID) {
		for viewerID := range r.sessionViewers[id] {
			if _, dup := seen[viewerID]; dup {
				continue
			}
			if sink, exists := r.viewers[viewerID]; exists {
				seen[viewerID] = struct{}{}
				activeSinks = append(activeSinks, sink)
			}
		}
	}
	collect(sessionID)
	if sessionID != domain.AllSessions {
		collect(domain.AllSessions)
	}
	return activeSinks
}

// Subscribe registers a viewer's active connection and points it at a
// session (domain.AllSessions to watch everything). It ensures
// thread-safe updates to both the global viewer directory and the
// session-specific membership set. If the session does not yet exist
// in the registry, it is initialized on the fly.
func (r *Registry) Subscribe(viewerID string, sessionID domain.SessionID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.viewers[viewerID] = sink

	if _, ok := r.sessionViewers[sessionID]; !ok {
		r.sessionViewers[sessionID] = make(Set)
	}
	r.sessionViewers[sessionID][viewerID] = struct{}{}
}

// Unsubscribe removes a viewer from the registry and the session it
// watched. It cleans up the connection and ensures no empty sets are
// left in the session map to prevent memory leaks over time.
func (r *Registry) Unsubscribe(viewerID string, sessionID domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.viewers, viewerID)

	if members, ok := r.sessionViewers[sessionID]; ok {
		delete(members, viewerID)

		// If no one is left watching, remove the session entry entirely
		if len(members) == 0 {
			delete(r.sessionViewers, sessionID)
		}
	}
}
