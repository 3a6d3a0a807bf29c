package event

import (
	"fmt"
	"log/slog"

	"debug-lab/errors"
)

type SelfStatsHandler struct {
	log *slog.Logger
}

func NewSelfStatsHandler(log *slog.Logger) *SelfStatsHandler {
	return &SelfStatsHandler{log: log}
}

func (h SelfStatsHandler) Handle(event Event) {
	switch event.Type {
	case SelfStatsType:
		payload, ok := event.Payload.(SelfStats)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Debug(fmt.Sprintf(" [COLLECTOR] | PID %d | STATUS %s | CPU %.2f%% | RAM %d | GOROUTINES %d | HEAP %d",
			payload.PID, payload.Status, payload.Cpu, payload.Ram, payload.Goroutines, payload.HeapAlloc))
	}
}
