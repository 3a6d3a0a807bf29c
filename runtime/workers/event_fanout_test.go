package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"debug-lab/contract"
	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/mocks"
)

func TestEventFanoutWorker_Fanout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	mockSink := mocks.NewMockEventSink(ctrl)
	viewerSink := mocks.NewMockEventSink(ctrl)
	viewerSinks := []contract.EventSink{viewerSink}

	fanoutWorker := NewEventFanoutWorker(
		log, []contract.EventSink{mockSink, mockSink},
		mockRegistry, nil, nil, 10*time.Second)

	done := make(chan struct{})
	var count atomic.Int32
	// Given one viewer watches the session
	mockRegistry.EXPECT().GetSinksForSession(domain.SessionID("s-1")).Return(viewerSinks).Times(1)
	// Given permanent sinks and viewer sinks are consumed
	consume := func(ctx context.Context, evt event.StreamEvent) error {
		if count.Add(1) == 3 {
			close(done)
		}
		return nil
	}
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(consume).Times(2)
	viewerSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(consume).Times(1)

	evt := event.LineAssembled{Session: "s-1", Text: "hello"}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(evt)

	// Then every sink got its copy
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Goroutine did not terminated at time")
	}
}

func TestEventFanoutWorker_SinkTimeout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	sinkTimeout := 20 * time.Millisecond
	fanoutWorker := NewEventFanoutWorker(
		log, []contract.EventSink{mockSink},
		mockRegistry, nil, nil, sinkTimeout)

	// Given no viewer watches the session
	mockRegistry.EXPECT().GetSinksForSession(gomock.Any()).Return(nil).Times(1)
	// Given a sink stuck until its deadline fires
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(
			func(ctx context.Context, evt event.StreamEvent) error {
				<-ctx.Done()     // Waiting for timeout to trigger cancellation
				return ctx.Err() // Sending back "context deadline exceeded"
			},
		).
		Times(1)

	evt := event.LineAssembled{Session: "s-1"}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(evt)

	// Then the stuck sink could not block anything
	// And waiting more than timeout to let goroutine finish
	time.Sleep(50 * time.Millisecond)
}

func TestEventFanoutWorker_ForwardsToTelemetry(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRegistry.EXPECT().GetSinksForSession(gomock.Any()).Return(nil).AnyTimes()

	events := make(chan event.Event, 1)
	telemetryChan := make(chan event.Event, 1)
	fanoutWorker := NewEventFanoutWorker(
		log, nil, mockRegistry, events, telemetryChan, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fanoutWorker.Run(ctx)

	// When a session closes
	evt := event.New(event.SessionClosedType, event.SessionClosed{Session: "s-1", Received: 7})
	events <- evt

	// Then the observability side receives the same envelope
	select {
	case e := <-telemetryChan:
		req.Equal(event.SessionClosedType, e.Type)
	case <-time.After(1 * time.Second):
		req.Fail("Telemetry channel never received the event")
	}
}
