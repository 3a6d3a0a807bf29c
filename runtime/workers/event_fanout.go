package workers

import (
	"context"
	"log/slog"
	"time"

	"debug-lab/contract"
	"debug-lab/domain/event"
)

var _ contract.Worker = (*EventFanoutWorker)(nil)

// EventFanoutWorker broadcasts stream events to multiple in-process
// consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanoutWorker is not a message
// broker.
//
// It is intended for sinks and side effects (tails, disk, index,
// metrics), not for core domain logic.
type EventFanoutWorker struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	events         chan event.Event
	telemetryChan  chan event.Event
	sinkTimeout    time.Duration
}

func NewEventFanoutWorker(log *slog.Logger,
	permanentSinks []contract.EventSink,
	registry contract.IRegistry,
	events, telemetryChan chan event.Event,
	sinkTimeout time.Duration) *EventFanoutWorker {
	return &EventFanoutWorker{
		log:            log,
		permanentSinks: permanentSinks,
		registry:       registry,
		events:         events,
		telemetryChan:  telemetryChan,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case e := <-w.events:
			if se, ok := e.Payload.(event.StreamEvent); ok {
				w.Fanout(se)
			}
			select {
			case w.telemetryChan <- e:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout delivers one event to every permanent sink plus the viewers
// watching its session. Each sink gets its own goroutine and deadline,
// a stuck tail cannot stall the disk.
func (w *EventFanoutWorker) Fanout(evt event.StreamEvent) {
	sinks := make([]contract.EventSink, 0, len(w.permanentSinks))
	sinks = append(sinks, w.permanentSinks...)
	sinks = append(sinks, w.registry.GetSinksForSession(evt.SessionID())...)

	for _, sink := range sinks {
		go func(s contract.EventSink) {
			ctx, cancel := context.WithTimeout(context.Background(), w.sinkTimeout)
			defer cancel()
			if err := s.Consume(ctx, evt); err != nil {
				w.log.Warn("Sink failed to consume event", "error", err)
			}
		}(sink)
	}
}
