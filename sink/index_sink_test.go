package sink_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/mocks"
	"debug-lab/sink"
)

func TestIndexSink_Consume(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISearchRepository(ctrl)
	// Silencing logs for clean test output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	sessionID := domain.SessionID(uuid.NewString())

	entryEvent := func() event.EntryReady {
		return event.EntryReady{Entry: domain.Entry{
			ID:      uuid.New(),
			Session: sessionID,
			Level:   domain.LevelInfo,
			Text:    "connection refused on upstream",
			At:      time.Now().UTC(),
		}}
	}

	t.Run("Flush triggered by size limit", func(t *testing.T) {
		maxSize := 3
		s := sink.NewIndexSink(mockRepo, logger, maxSize, 10*time.Second)

		// Expect exactly one batch call with 3 items
		mockRepo.EXPECT().
			IndexBatch(gomock.Any()).
			DoAndReturn(func(entries []domain.Entry) error {
				req.Equal(maxSize, len(entries))
				return nil
			}).Times(1)
		mockRepo.EXPECT().Flush().Return(nil).Times(1)

		for i := 0; i < maxSize; i++ {
			err := s.Consume(ctx, entryEvent())
			req.NoError(err)
		}
	})

	t.Run("Flush triggered by timeout (asynchronous)", func(t *testing.T) {
		timeout := 50 * time.Millisecond
		s := sink.NewIndexSink(mockRepo, logger, 100, timeout)

		// We send only 1 event, so size-based flush won't trigger.
		// The IndexBatch must be called by the timer.
		mockRepo.EXPECT().
			IndexBatch(gomock.Any()).
			DoAndReturn(func(entries []domain.Entry) error {
				req.Equal(1, len(entries))
				return nil
			}).Times(1)
		mockRepo.EXPECT().Flush().Return(nil).Times(1)

		err := s.Consume(ctx, entryEvent())
		req.NoError(err)

		// Wait slightly more than the timeout to allow the goroutine to run
		time.Sleep(timeout + 30*time.Millisecond)
	})

	t.Run("Concurrent access safety", func(t *testing.T) {
		numWorkers := 10
		entriesPerWorker := 10
		totalEntries := numWorkers * entriesPerWorker

		// Set maxSize to totalEntries to trigger a single flush at the end
		s := sink.NewIndexSink(mockRepo, logger, totalEntries, 2*time.Second)

		mockRepo.EXPECT().
			IndexBatch(gomock.Any()).
			Return(nil).
			Times(1)
		mockRepo.EXPECT().Flush().Return(nil).Times(1)

		// Using a wait group or a channel to wait for all goroutines
		done := make(chan bool, numWorkers)
		for w := 0; w < numWorkers; w++ {
			go func() {
				for i := 0; i < entriesPerWorker; i++ {
					_ = s.Consume(ctx, entryEvent())
				}
				done <- true
			}()
		}

		for w := 0; w < numWorkers; w++ {
			<-done
		}
	})

	t.Run("Non entry events are ignored", func(t *testing.T) {
		s := sink.NewIndexSink(mockRepo, logger, 1, time.Second)

		// No repository call expected
		err := s.Consume(ctx, event.SessionOpened{Session: domain.Session{ID: sessionID}})
		req.NoError(err)
	})
}
