package runtime_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/infrastructure/storage"
	"debug-lab/mocks"
	"debug-lab/observability"
	"debug-lab/runtime"
	"debug-lab/runtime/workers"
)

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	// 1. Create channel to wait for a signal at the end of process
	done := make(chan struct{})
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetryChan := make(chan event.Event, 100)
	eventChan := make(chan event.Event, 100)
	supervisor := workers.NewSupervisor(log, telemetryChan, 200*time.Millisecond)
	registry := runtime.NewRegistry()
	monitor := observability.NewMonitoringManager(log)
	entryRepository := storage.NewEntryRepository(db, log, lo.ToPtr(100))

	ctrl := gomock.NewController(t)
	mockSearchRepo := mocks.NewMockISearchRepository(ctrl)
	mockSearchRepo.EXPECT().IndexBatch(gomock.Any()).Return(nil).AnyTimes()
	mockSearchRepo.EXPECT().Flush().Return(nil).AnyTimes()

	collector := runtime.NewCollector(
		log, supervisor, registry, telemetryChan, eventChan,
		entryRepository,
		mockSearchRepo,
		monitor,
		2, 100,
		time.Second,
		100*time.Millisecond,
		100*time.Millisecond,
		100*time.Millisecond,
		time.Second,
		'*',
		80,
		4096,
		10,
		50,
	)

	// Given a viewer tails the session while the pipeline stores it
	session := domain.Session{
		ID:        "itg-1",
		App:       "integration",
		Host:      "local",
		PID:       999,
		StartedAt: time.Now().UTC(),
	}
	mockViewerSink := mocks.NewMockEventSink(ctrl)
	mockViewerSink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.StreamEvent) error {
			if _, ok := e.(event.EntryReady); ok {
				close(done) // Signaling the entry has reached the tail
			}
			return nil
		}).
		AnyTimes()
	collector.RegisterViewer("tail-1", session.ID, mockViewerSink)

	go func() {
		err = collector.Start(ctx)
		req.NoError(err)
	}()

	// Clean everything at the end of the test
	t.Cleanup(func() {
		collector.Stop()
		db.Close()
	})
	time.Sleep(100 * time.Millisecond) // Let the workers settle

	// When a session opens and emits one terminated line
	collector.OpenSession(session)
	err = collector.Dispatch(ctx, domain.AppendChunkCommand{
		SessionID: string(session.ID),
		Seq:       1,
		Text:      "INFO: this message will self destruct in 5 seconds\r\n",
		At:        time.Now().UTC(),
	})
	req.NoError(err)

	// And wait time for channels & goroutines
	select {
	case <-done:
		// Then the live tail received the scrubbed entry
	case <-time.After(2 * time.Second):
		req.Fail("Timeout: entry has never reached the tail")
	}

	// And the same entry landed in BadgerDB through the disk sink
	var stored []domain.Entry
	req.Eventually(func() bool {
		entries, _, err := entryRepository.GetEntries(session.ID, nil)
		if err != nil || len(entries) == 0 {
			return false
		}
		stored = entries
		return true
	}, 2*time.Second, 50*time.Millisecond, "entry never landed in the store")

	req.Len(stored, 1)
	req.Equal("INFO: this message will self destruct in 5 seconds", stored[0].Text)
	req.Equal(domain.LevelInfo, stored[0].Level)
	req.Equal(uint64(1), stored[0].Seq)
	req.Equal("integration", stored[0].App)
	req.False(stored[0].Redacted)

	// And the session metadata is queryable (its disk write runs in
	// a sibling goroutine, so it can land after the entry)
	var sessions []domain.Session
	req.Eventually(func() bool {
		sessions, err = collector.ListSessions()
		return err == nil && len(sessions) == 1
	}, 2*time.Second, 50*time.Millisecond, "session metadata never stored")
	req.Equal(session.ID, sessions[0].ID)

	collector.CloseSession(session.ID, 1)
	// Let the index flush timer fire while the mocks are still alive
	time.Sleep(300 * time.Millisecond)
}
