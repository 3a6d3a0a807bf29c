package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"debug-lab/contract"
	"debug-lab/domain"
	"debug-lab/domain/search"
	"debug-lab/errors"
)

type ICollectorService interface {
	OpenSession(session domain.Session) error
	CloseSession(sessionID domain.SessionID, received uint64)
	Append(ctx context.Context, cmd domain.AppendChunkCommand) error
	GetEntries(cmd domain.GetEntriesCommand) ([]domain.Entry, *string, error)
	Search(ctx context.Context, query search.Query) ([]domain.Entry, uint64, error)
	ListSessions() ([]domain.Session, error)
	Watch(viewerID string, sessionID domain.SessionID, sink contract.EventSink)
	Unwatch(viewerID string, sessionID domain.SessionID)
}

var validate = validator.New()

// sessionRules are the fields a relay must provide when opening a session.
// Checked here so transport handlers stay free of business rules.
type sessionRules struct {
	ID  string `validate:"required,max=128"`
	App string `validate:"required,max=128"`
}

type CollectorService struct {
	collector contract.ICollector
}

func NewCollectorService(c contract.ICollector) *CollectorService {
	return &CollectorService{collector: c}
}

func (s *CollectorService) OpenSession(session domain.Session) error {
	rules := sessionRules{ID: string(session.ID), App: session.App}
	if err := validate.Struct(rules); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidSession, err)
	}
	s.collector.OpenSession(session)
	return nil
}

func (s *CollectorService) CloseSession(sessionID domain.SessionID, received uint64) {
	s.collector.CloseSession(sessionID, received)
}

// Append forwards one chunk into the pipeline. A chunk without a session
// never enters the command channel: the assembler has no buffer to put it in.
func (s *CollectorService) Append(ctx context.Context, cmd domain.AppendChunkCommand) error {
	if cmd.SessionID == "" {
		return errors.ErrInvalidSession
	}
	return s.collector.Dispatch(ctx, cmd)
}

func (s *CollectorService) GetEntries(cmd domain.GetEntriesCommand) ([]domain.Entry, *string, error) {
	return s.collector.GetEntries(cmd)
}

func (s *CollectorService) Search(ctx context.Context, query search.Query) ([]domain.Entry, uint64, error) {
	return s.collector.SearchEntries(ctx, query)
}

func (s *CollectorService) ListSessions() ([]domain.Session, error) {
	return s.collector.ListSessions()
}

func (s *CollectorService) Watch(viewerID string, sessionID domain.SessionID, sink contract.EventSink) {
	s.collector.RegisterViewer(viewerID, sessionID, sink)
}

func (s *CollectorService) Unwatch(viewerID string, sessionID domain.SessionID) {
	s.collector.UnregisterViewer(viewerID, sessionID)
}
