// Package relay ships debug output from a host process to a collector.
// It implements dbg.Sink on one side and the Ingest client stream on
// the other, with a buffered hand-off in between so the host process
// never blocks on the network.
package relay

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"debug-lab/contract"
	"debug-lab/domain"
	pb "debug-lab/proto/collector"
)

var _ contract.Worker = (*Relay)(nil)

type chunkFrame struct {
	text string
	at   time.Time
}

// Relay buffers chunks written by the dbg facility and streams them to
// the collector. When the buffer is full chunks are dropped, never
// queued unbounded: a debug channel must not take the host down.
type Relay struct {
	log          *slog.Logger
	addr         string
	token        string
	meta         domain.Session
	chunks       chan chunkFrame
	seq          atomic.Uint64
	dropped      atomic.Uint64
	retryBackoff time.Duration
}

func NewRelay(log *slog.Logger, addr, token string, meta domain.Session,
	bufferSize int, retryBackoff time.Duration) *Relay {
	return &Relay{
		log:          log,
		addr:         addr,
		token:        token,
		meta:         meta,
		chunks:       make(chan chunkFrame, bufferSize),
		retryBackoff: retryBackoff,
	}
}

// NewSession captures the identity of the running process.
func NewSession(app string) domain.Session {
	host, _ := os.Hostname()
	return domain.Session{
		ID:        domain.SessionID(uuid.NewString()),
		App:       app,
		Host:      host,
		PID:       os.Getpid(),
		StartedAt: time.Now().UTC(),
	}
}

// WriteChunk satisfies dbg.Sink. It never blocks and never fails:
// past the buffer the chunk is counted as dropped and forgotten.
func (r *Relay) WriteChunk(chunk string) {
	select {
	case r.chunks <- chunkFrame{text: chunk, at: time.Now().UTC()}:
	default:
		r.dropped.Add(1)
		r.log.Debug("Relay buffer full, dropping chunk")
	}
}

// Dropped reports how many chunks never left the process.
func (r *Relay) Dropped() uint64 {
	return r.dropped.Load()
}

// Run keeps an Ingest stream open towards the collector, reconnecting
// with a fixed backoff until the context is canceled. A reconnect
// re-announces the same session; the store records it idempotently and
// the assembler starts a fresh line buffer for it.
func (r *Relay) Run(ctx context.Context) error {
	for {
		err := r.connectAndStream(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		r.log.Warn("Collector link lost, reconnecting",
			"error", err,
			"backoff", r.retryBackoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryBackoff):
		}
	}
}

func (r *Relay) connectAndStream(ctx context.Context) error {
	conn, err := grpc.NewClient(r.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	// The stream outlives ctx on purpose: shutdown still has to push
	// the Close frame and collect the summary.
	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()
	if r.token != "" {
		streamCtx = metadata.AppendToOutgoingContext(streamCtx, "authorization", "Bearer "+r.token)
	}

	client := pb.NewCollectorServiceClient(conn)
	stream, err := client.Ingest(streamCtx)
	if err != nil {
		return err
	}

	if err := stream.Send(r.openFrame()); err != nil {
		return err
	}
	r.log.Info("Debug relay connected",
		"addr", r.addr,
		"session", string(r.meta.ID))

	for {
		select {
		case <-ctx.Done():
			r.drain(stream)
			return r.finish(stream)
		case c := <-r.chunks:
			if err := stream.Send(r.chunkToFrame(c)); err != nil {
				return err
			}
		}
	}
}

// drain pushes whatever is still buffered before closing. Errors are
// ignored here: finish reports the terminal state either way.
func (r *Relay) drain(stream grpc.ClientStreamingClient[pb.IngestRequest, pb.IngestSummary]) {
	for {
		select {
		case c := <-r.chunks:
			if err := stream.Send(r.chunkToFrame(c)); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (r *Relay) finish(stream grpc.ClientStreamingClient[pb.IngestRequest, pb.IngestSummary]) error {
	_ = stream.Send(&pb.IngestRequest{
		Frame: &pb.IngestRequest_Close{Close: &pb.CloseSession{
			SessionId: string(r.meta.ID),
			Received:  r.seq.Load(),
		}},
	})

	summary, err := stream.CloseAndRecv()
	if err != nil {
		r.log.Warn("Relay close failed", "error", err)
		return nil
	}

	r.log.Info("Debug relay drained",
		"received", summary.Received,
		"dropped", summary.Dropped+r.dropped.Load())
	return nil
}

func (r *Relay) openFrame() *pb.IngestRequest {
	return &pb.IngestRequest{
		Frame: &pb.IngestRequest_Open{Open: &pb.OpenSession{
			SessionId: string(r.meta.ID),
			App:       r.meta.App,
			Host:      r.meta.Host,
			Pid:       int32(r.meta.PID),
			StartedAt: r.meta.StartedAt.UnixNano(),
		}},
	}
}

func (r *Relay) chunkToFrame(c chunkFrame) *pb.IngestRequest {
	return &pb.IngestRequest{
		Frame: &pb.IngestRequest_Chunk{Chunk: &pb.Chunk{
			SessionId: string(r.meta.ID),
			Seq:       r.seq.Add(1),
			Text:      c.text,
			At:        c.at.UnixNano(),
		}},
	}
}
