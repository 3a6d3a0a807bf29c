package event

import (
	"log/slog"
	"sync"

	"debug-lab/errors"
)

type RedactionHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter uint64
	hit     map[string]uint64
}

func NewRedactionHandler(log *slog.Logger) *RedactionHandler {
	return &RedactionHandler{
		log:     log,
		counter: 0,
		hit:     make(map[string]uint64),
	}
}

func (h *RedactionHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case RedactionHitType:
		payload, ok := event.Payload.(RedactionHit)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter++
		h.hit[payload.Marker]++
	}
}

// Hits exposes the per-marker tally for the stats page.
func (h *RedactionHandler) Hits() map[string]uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]uint64, len(h.hit))
	for k, v := range h.hit {
		out[k] = v
	}
	return out
}
