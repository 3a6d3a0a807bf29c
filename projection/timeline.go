// Package projection builds local read models from observed events.
// Handles ordering and bounded retention.
// Does not emit events or interact with UI directly.
package projection

import (
	"context"
	"sync"

	"debug-lab/domain"
	"debug-lab/domain/event"
)

// Timeline holds a simple in-memory view of the latest entries.
// Viewers landing on the stats page read it instead of hitting disk.
type Timeline struct {
	mu       sync.Mutex
	capacity int
	entries  []domain.Entry
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Consume(_ context.Context, e event.StreamEvent) error {
	evt, ok := e.(event.EntryReady)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, evt.Entry)
	if t.capacity > 0 && len(t.entries) > t.capacity {
		t.entries = t.entries[len(t.entries)-t.capacity:]
	}
	return nil
}

// Recent returns a copy so callers never race with Consume.
func (t *Timeline) Recent() []domain.Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
