package sink

import (
	"context"
	"fmt"
	"log/slog"

	"debug-lab/domain/event"
	"debug-lab/infrastructure/storage"
)

type DiskSink struct {
	repository storage.IEntryRepository
	log        *slog.Logger
}

func NewDiskSink(repository storage.IEntryRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.StreamEvent) error {
	switch evt := e.(type) {
	case event.EntryReady:
		return d.repository.StoreEntry(evt.Entry)
	case event.SessionOpened:
		return d.repository.StoreSession(evt.Session)
	default:
		d.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}
