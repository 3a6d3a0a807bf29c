package sink

import (
	"context"
	"log/slog"
	"time"

	"debug-lab/domain/event"
)

// GrpcSink bridges the fan-out stage and one connected viewer stream.
// Events are handed over through a buffered channel so a slow viewer
// never stalls the pipeline: past deliveryTimeout the event is dropped
// and reported on the telemetry channel.
type GrpcSink struct {
	TailEvents      chan event.StreamEvent
	log             *slog.Logger
	deliveryTimeout time.Duration
	telemetryChan   chan event.Event
}

func NewGrpcSink(log *slog.Logger, bufferSize int, deliveryTimeout time.Duration,
	telemetryChan chan event.Event) *GrpcSink {
	return &GrpcSink{
		TailEvents:      make(chan event.StreamEvent, bufferSize),
		log:             log,
		deliveryTimeout: deliveryTimeout,
		telemetryChan:   telemetryChan,
	}
}

func (g *GrpcSink) Consume(ctx context.Context, e event.StreamEvent) error {
	select {
	case g.TailEvents <- e:
		return nil
	case <-time.After(g.deliveryTimeout):
		g.reportDrop(e)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *GrpcSink) reportDrop(e event.StreamEvent) {
	g.log.Debug("Viewer too slow, dropping event", slog.String("session", string(e.SessionID())))
	select {
	case g.telemetryChan <- event.New(event.EntryDroppedType, event.EntryDropped{
		SinkName: "grpc",
		Session:  e.SessionID(),
	}):
	default:
		g.log.Debug("Observability telemetry event lost")
	}
}
