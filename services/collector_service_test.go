package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"debug-lab/domain"
	"debug-lab/domain/search"
	"debug-lab/errors"
	"debug-lab/mocks"
)

func TestCollectorService_OpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockICollector(ctrl)
	svc := NewCollectorService(mockCollector)

	t.Run("should open session when metadata is complete", func(t *testing.T) {
		req := require.New(t)
		session := domain.Session{
			ID:        "7f3a",
			App:       "payment-api",
			Host:      "worker-1",
			PID:       4242,
			StartedAt: time.Now().UTC(),
		}

		mockCollector.EXPECT().OpenSession(session).Times(1)

		req.NoError(svc.OpenSession(session))
	})

	t.Run("should reject session without app name", func(t *testing.T) {
		req := require.New(t)
		session := domain.Session{ID: "7f3a"}

		// Collector should NEVER be reached with invalid metadata
		mockCollector.EXPECT().OpenSession(gomock.Any()).Times(0)

		err := svc.OpenSession(session)

		req.Error(err)
		req.ErrorIs(err, errors.ErrInvalidSession)
	})

	t.Run("should reject session without id", func(t *testing.T) {
		req := require.New(t)
		session := domain.Session{App: "payment-api"}

		mockCollector.EXPECT().OpenSession(gomock.Any()).Times(0)

		req.ErrorIs(svc.OpenSession(session), errors.ErrInvalidSession)
	})
}

func TestCollectorService_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockICollector(ctrl)
	svc := NewCollectorService(mockCollector)

	t.Run("should forward chunk to the pipeline", func(t *testing.T) {
		req := require.New(t)
		cmd := domain.AppendChunkCommand{
			SessionID: "7f3a",
			Seq:       1,
			Text:      "hello world\r\n",
			At:        time.Now().UTC(),
		}

		mockCollector.EXPECT().
			Dispatch(gomock.Any(), cmd).
			Return(nil).
			Times(1)

		req.NoError(svc.Append(context.Background(), cmd))
	})

	t.Run("should reject chunk without session", func(t *testing.T) {
		req := require.New(t)

		mockCollector.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

		err := svc.Append(context.Background(), domain.AppendChunkCommand{Text: "orphan"})

		req.ErrorIs(err, errors.ErrInvalidSession)
	})

	t.Run("should propagate saturation errors", func(t *testing.T) {
		req := require.New(t)
		cmd := domain.AppendChunkCommand{SessionID: "7f3a", Text: "x"}

		mockCollector.EXPECT().
			Dispatch(gomock.Any(), cmd).
			Return(errors.ErrPipelineSaturated).
			Times(1)

		req.ErrorIs(svc.Append(context.Background(), cmd), errors.ErrPipelineSaturated)
	})
}

func TestCollectorService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockICollector(ctrl)
	svc := NewCollectorService(mockCollector)

	t.Run("should pass search queries through untouched", func(t *testing.T) {
		req := require.New(t)
		query := search.Query{Terms: "deadline exceeded", Limit: 10}
		expected := []domain.Entry{{Text: "deadline exceeded while calling billing"}}

		mockCollector.EXPECT().
			SearchEntries(gomock.Any(), query).
			Return(expected, uint64(1), nil).
			Times(1)

		entries, total, err := svc.Search(context.Background(), query)

		req.NoError(err)
		req.Equal(uint64(1), total)
		req.Equal(expected, entries)
	})

	t.Run("should page entries by session", func(t *testing.T) {
		req := require.New(t)
		cmd := domain.GetEntriesCommand{SessionID: "7f3a"}

		mockCollector.EXPECT().
			GetEntries(cmd).
			Return([]domain.Entry{}, nil, nil).
			Times(1)

		_, cursor, err := svc.GetEntries(cmd)

		req.NoError(err)
		req.Nil(cursor)
	})
}
