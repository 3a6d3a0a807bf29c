package sink

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/infrastructure/storage"
)

type IndexSink struct {
	mu            sync.Mutex
	timer         *time.Timer
	repository    storage.ISearchRepository
	log           *slog.Logger
	entries       []domain.Entry
	maxBatchSize  int
	bufferTimeout time.Duration
}

func NewIndexSink(
	repository storage.ISearchRepository,
	log *slog.Logger,
	maxBatchSize int,
	bufferTimeout time.Duration,
) *IndexSink {
	return &IndexSink{
		repository:    repository,
		log:           log,
		maxBatchSize:  maxBatchSize,
		bufferTimeout: bufferTimeout,
	}
}

// Consume implements the EventSink interface.
// It acts as a high-performance buffer that aggregates entries for indexing.
// The flush is triggered either by reaching a size threshold (maxBatchSize)
// or a time-based deadline (bufferTimeout).
func (s *IndexSink) Consume(_ context.Context, e event.StreamEvent) error {
	evt, ok := e.(event.EntryReady)
	if !ok {
		return nil
	}

	s.mu.Lock()
	// 2. State update: Append the entry to the current slice
	s.entries = append(s.entries, evt.Entry)

	// 3. Timer management: if this is the first entry of a new batch,
	// start a background timer to ensure data is not stuck if the throughput is low.
	// We only start it if no other timer is currently running (timer == nil).
	if len(s.entries) == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.bufferTimeout, func() {
			if err := s.flush(); err != nil {
				s.log.Error("Batching: Timeout flush failed", "error", err)
			}
		})
	}

	// 4. Threshold check: determine if the buffer reached its capacity
	isFull := len(s.entries) >= s.maxBatchSize
	s.mu.Unlock()

	// 5. Size-based flush: triggered if the batch is full
	if isFull {
		return s.flush()
	}

	return nil
}

// flush handles the transition of data from the transient buffer to the index.
// It employs an 'atomic swap' pattern to minimize lock contention.
func (s *IndexSink) flush() error {
	s.mu.Lock()

	// Stop and clear the timer to prevent redundant flushes.
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	// Double-check for empty buffer in case of concurrent flush calls.
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return nil
	}

	// Perform a 'memory swap' to release the lock as soon as possible.
	// This allows start filling the next batch immediately.
	batchEntries := s.entries
	s.entries = make([]domain.Entry, 0, s.maxBatchSize)

	s.mu.Unlock()

	if err := s.repository.IndexBatch(batchEntries); err != nil {
		return fmt.Errorf("failed to index batch: %w", err)
	}
	if err := s.repository.Flush(); err != nil {
		return fmt.Errorf("failed to flush index: %w", err)
	}
	s.log.Info("Batch indexed successfully", "count", len(batchEntries))

	return nil
}
