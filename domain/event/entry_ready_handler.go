package event

import (
	"log/slog"
	"sync"

	"debug-lab/errors"
)

// EntryReadyHandler handles events when an entry leaves the scrub
// pipeline. Useful for updating observability metrics, logging, or
// telemetry.
type EntryReadyHandler struct {
	log     *slog.Logger
	mu      sync.Mutex
	counter *Counter
}

func NewEntryReadyHandler(log *slog.Logger, counter *Counter) *EntryReadyHandler {
	return &EntryReadyHandler{log: log, counter: counter}
}

func (p *EntryReadyHandler) Handle(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch event.Type {
	case EntryReadyType:
		if _, ok := event.Payload.(EntryReady); !ok {
			p.log.Error(errors.ErrInvalidPayload.Error())
		}
		p.counter.Increment(EntryReadyType)
	}
}
