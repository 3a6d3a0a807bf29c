package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/domain/search"
	"debug-lab/errors"
	pb "debug-lab/proto/collector"
	"debug-lab/services"
	"debug-lab/sink"
)

type CollectorServer struct {
	pb.UnimplementedCollectorServiceServer
	collectorService     services.ICollectorService
	connectionBufferSize int
	log                  *slog.Logger
	deliveryTimeout      time.Duration
	telemetryChan        chan event.Event
}

func NewCollectorServer(log *slog.Logger, collectorService services.ICollectorService,
	connectionBufferSize int, deliveryTimeout time.Duration,
	telemetryChan chan event.Event) *CollectorServer {
	return &CollectorServer{
		collectorService:     collectorService,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
		deliveryTimeout:      deliveryTimeout,
		telemetryChan:        telemetryChan,
	}
}

// Ingest receives one relay's frames: an Open announcing the session,
// then chunks, then an optional Close before the client half-closes.
// Chunks the pipeline cannot absorb in time are counted as dropped and
// reported in the summary instead of failing the whole stream, so a
// congested collector degrades to losing lines rather than sessions.
func (s *CollectorServer) Ingest(stream grpc.ClientStreamingServer[pb.IngestRequest, pb.IngestSummary]) error {
	var (
		sessionID string
		received  uint64
		dropped   uint64
		closed    bool
	)

	closeSession := func() {
		if sessionID != "" && !closed {
			s.collectorService.CloseSession(domain.SessionID(sessionID), received)
			closed = true
		}
	}

	for {
		in, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Client vanished mid-stream: flush what we have.
			closeSession()
			return err
		}

		switch frame := in.Frame.(type) {
		case *pb.IngestRequest_Open:
			open := frame.Open
			session := domain.Session{
				ID:        domain.SessionID(open.SessionId),
				App:       open.App,
				Host:      open.Host,
				PID:       int(open.Pid),
				StartedAt: time.Unix(0, open.StartedAt).UTC(),
			}
			if err := s.collectorService.OpenSession(session); err != nil {
				return errors.MapToGRPCError(err)
			}
			sessionID = open.SessionId

		case *pb.IngestRequest_Chunk:
			if sessionID == "" || closed {
				return errors.MapToGRPCError(errors.ErrInvalidSession)
			}
			chunk := frame.Chunk
			cmd := domain.AppendChunkCommand{
				SessionID: sessionID,
				Seq:       chunk.Seq,
				Text:      chunk.Text,
				Category:  chunk.Category,
				At:        time.Unix(0, chunk.At).UTC(),
			}
			if err := s.collectorService.Append(stream.Context(), cmd); err != nil {
				if stderrors.Is(err, errors.ErrPipelineSaturated) {
					dropped++
					continue
				}
				return errors.MapToGRPCError(err)
			}
			received++

		case *pb.IngestRequest_Close:
			closeSession()
		}
	}

	closeSession()

	return stream.SendAndClose(&pb.IngestSummary{
		SessionId: sessionID,
		Received:  received,
		Dropped:   dropped,
	})
}

// Tail establishes a long-lived stream for live entry delivery.
// It registers a dedicated gRPC Sink in the Collector's registry.
// This method blocks until the viewer disconnects or a network error occurs.
// Proper cleanup is ensured via deferred unregistration to prevent memory leaks in the registry.
func (s *CollectorServer) Tail(req *pb.TailRequest, stream grpc.ServerStreamingServer[pb.TailEvent]) error {
	grpcSink := sink.NewGrpcSink(s.log, s.connectionBufferSize, s.deliveryTimeout, s.telemetryChan)
	viewerID := uuid.NewString()
	sessionID := domain.SessionID(req.SessionId) // empty means every session
	s.collectorService.Watch(viewerID, sessionID, grpcSink)
	defer s.collectorService.Unwatch(viewerID, sessionID)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Warn(fmt.Sprintf("Viewer %s disconnected from %q", viewerID, sessionID))
			return nil
		case evt := <-grpcSink.TailEvents:
			tailEvent, ok := toTailEvent(evt)
			if !ok {
				continue
			}
			if err := stream.Send(tailEvent); err != nil {
				s.log.Error("failed to push event to stream",
					"viewer_id", viewerID,
					"session_id", sessionID,
					"error", err)
				return err
			}
		}
	}
}

func toTailEvent(evt event.StreamEvent) (*pb.TailEvent, bool) {
	switch e := evt.(type) {
	case event.EntryReady:
		return &pb.TailEvent{
			Payload: &pb.TailEvent_Entry{Entry: toEntry(e.Entry)},
		}, true
	case event.SessionOpened:
		return &pb.TailEvent{
			Payload: &pb.TailEvent_Session{Session: &pb.SessionChange{
				SessionId: string(e.Session.ID),
				Status:    "open",
				At:        e.Session.StartedAt.UnixNano(),
			}},
		}, true
	case event.SessionClosed:
		return &pb.TailEvent{
			Payload: &pb.TailEvent_Session{Session: &pb.SessionChange{
				SessionId: string(e.Session),
				Status:    "closed",
				At:        e.At.UnixNano(),
			}},
		}, true
	default:
		return nil, false
	}
}

func (s *CollectorServer) Search(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {
	query := search.Query{
		Terms:   req.Terms,
		Session: req.SessionId,
		Level:   req.Level,
		Limit:   int(req.Limit),
		Offset:  int(req.Offset),
	}
	entries, total, err := s.collectorService.Search(ctx, query)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchResponse{
		Entries: toEntryResponse(entries),
		Total:   total,
	}, nil
}

func (s *CollectorServer) GetEntries(_ context.Context, req *pb.GetEntriesRequest) (*pb.GetEntriesResponse, error) {
	var cursor *string
	if req.Cursor != "" {
		cursor = lo.ToPtr(req.Cursor)
	}
	entries, next, err := s.collectorService.GetEntries(domain.GetEntriesCommand{
		SessionID: req.SessionId,
		Cursor:    cursor,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetEntriesResponse{
		Entries: toEntryResponse(entries),
		Cursor:  lo.FromPtr(next),
	}, nil
}

func (s *CollectorServer) ListSessions(_ context.Context, _ *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {
	sessions, err := s.collectorService.ListSessions()
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListSessionsResponse{
		Sessions: lo.Map(sessions, func(item domain.Session, _ int) *pb.Session {
			return &pb.Session{
				Id:        string(item.ID),
				App:       item.App,
				Host:      item.Host,
				Pid:       int32(item.PID),
				StartedAt: item.StartedAt.UnixNano(),
			}
		}),
	}, nil
}

func toEntryResponse(entries []domain.Entry) []*pb.Entry {
	return lo.Map(entries, func(item domain.Entry, _ int) *pb.Entry {
		return toEntry(item)
	})
}

func toEntry(item domain.Entry) *pb.Entry {
	return &pb.Entry{
		Id:        item.ID.String(),
		SessionId: string(item.Session),
		App:       item.App,
		Host:      item.Host,
		Pid:       int32(item.PID),
		Category:  item.Category,
		Level:     string(item.Level),
		Lang:      item.Lang,
		Text:      item.Text,
		Redacted:  item.Redacted,
		Seq:       item.Seq,
		At:        item.At.UnixNano(),
	}
}
