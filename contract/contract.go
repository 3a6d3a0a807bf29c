//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/domain/search"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.StreamEvent) error
}

type IRegistry interface {
	GetSinksForSession(sessionID domain.SessionID) []EventSink
	Subscribe(viewerID string, sessionID domain.SessionID, sink EventSink)
	Unsubscribe(viewerID string, sessionID domain.SessionID)
}

type ICollector interface {
	OpenSession(session domain.Session)
	CloseSession(sessionID domain.SessionID, received uint64)
	RegisterSinks(sink ...EventSink)
	Dispatch(ctx context.Context, cmd domain.AppendChunkCommand) error
	GetEntries(cmd domain.GetEntriesCommand) ([]domain.Entry, *string, error)
	SearchEntries(ctx context.Context, query search.Query) ([]domain.Entry, uint64, error)
	ListSessions() ([]domain.Session, error)
	RegisterViewer(viewerID string, sessionID domain.SessionID, sink EventSink)
	UnregisterViewer(viewerID string, sessionID domain.SessionID)
	Start(ctx context.Context) error
	Stop()
}
