package e2e

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb2 "debug-lab/proto/account"
	pb "debug-lab/proto/collector"
)

type testIngestSearchSuite struct {
	BaseGrpcSuite
}

func TestIngestSearchSuite(t *testing.T) {
	suite.Run(t, &testIngestSearchSuite{})
}

func (s *testIngestSearchSuite) TestFullIngestSearchFlow() {
	sessionID := uuid.New().String()
	// One unique marker per run so Search cannot match a previous run
	marker := fmt.Sprintf("e2e-marker-%s", sessionID[:8])

	// --- STEP 0: AUTHENTICATION ---
	// A throwaway account per run, the collector keeps it in its own store
	if s.Config.Auth {
		s.Run("Step 0: Register a throwaway account", func() {
			s.WithAuth("Registering test account", func(ctx context.Context, client pb2.AuthServiceClient) {
				email := fmt.Sprintf("e2e-%s@debug-lab.dev", sessionID[:8])
				resp, err := client.Register(ctx, &pb2.RegisterRequest{
					Email:    email,
					Password: "Str0ng!Password42",
				})
				s.Require().NoError(err, "Failed to register via gRPC")
				s.Require().NotEmpty(resp.GetToken(), "Register returned an empty token")
				s.Token = resp.GetToken()
			})
		})
	}

	// --- STEP 1: STREAM INTEGRITY ---
	s.Run("Step 1: Ingest a session and validate the summary", func() {
		s.WithCollector("Push a full session over one stream", func(ctx context.Context, client pb.CollectorServiceClient) {
			stream, err := client.Ingest(ctx)
			s.Require().NoError(err)

			// PROTOCOL: the open frame must precede every chunk
			err = stream.Send(&pb.IngestRequest{Frame: &pb.IngestRequest_Open{Open: &pb.OpenSession{
				SessionId: sessionID,
				App:       "e2e-suite",
				Host:      "e2e-host",
				Pid:       int32(os.Getpid()),
				StartedAt: time.Now().UnixNano(),
			}}})
			s.Require().NoError(err)

			chunks := []string{
				"INFO: first line carrying " + marker + "\r\n",
				"DEBUG: a line split across ",
				"two separate chunks\r\n",
				"DEBUG: connecting with password hunter2 to replica\r\n",
			}
			for i, text := range chunks {
				err = stream.Send(&pb.IngestRequest{Frame: &pb.IngestRequest_Chunk{Chunk: &pb.Chunk{
					SessionId: sessionID,
					Seq:       uint64(i + 1),
					Text:      text,
					At:        time.Now().UnixNano(),
				}}})
				s.Require().NoError(err)
			}

			// PROTOCOL: the close frame announces how many chunks were sent
			err = stream.Send(&pb.IngestRequest{Frame: &pb.IngestRequest_Close{Close: &pb.CloseSession{
				SessionId: sessionID,
				Received:  uint64(len(chunks)),
			}}})
			s.Require().NoError(err)

			summary, err := stream.CloseAndRecv()
			s.Require().NoError(err)
			s.Require().Equal(sessionID, summary.GetSessionId(), "Summary names a different session")
			s.Require().Equal(uint64(len(chunks)), summary.GetReceived(), "Collector lost chunks")
			s.Require().Zero(summary.GetDropped(), "Collector reported drops on a tiny session")
			s.T().Logf("Verified: %d chunks acknowledged in order", summary.GetReceived())
		})
	})

	// --- STEP 2: ASYNCHRONOUS PROCESSING VALIDATION ---
	s.Run("Step 2: Wait for the pipeline to index the entries", func() {
		// We wait for assemble, scrub and index to complete behind the stream
		s.WithCollector("Polling the search index", func(ctx context.Context, client pb.CollectorServiceClient) {
			s.Eventually(func() bool {
				resp, err := client.Search(ctx, &pb.SearchRequest{Terms: marker, Limit: 5})
				return err == nil && resp.GetTotal() > 0
			}, 20*time.Second, 1*time.Second, "Entry not indexed within timeout")
		})
	})

	// --- STEP 3: STORED ENTRIES, ORDER AND REDACTION ---
	s.Run("Step 3: Fetch stored entries and verify order and redaction", func() {
		s.WithCollector("Reading back the stored session", func(ctx context.Context, client pb.CollectorServiceClient) {
			resp, err := client.GetEntries(ctx, &pb.GetEntriesRequest{SessionId: sessionID})
			s.Require().NoError(err)

			entries := resp.GetEntries()
			s.Require().NotEmpty(entries, "No entries stored for the session")

			// SEQUENCE CHECK: the store serves newest first, so seq descends
			for i := 1; i < len(entries); i++ {
				s.Require().Greater(entries[i-1].GetSeq(), entries[i].GetSeq(),
					"Entries out of order at position %d", i)
			}

			var all strings.Builder
			for _, e := range entries {
				all.WriteString(e.GetText())
				all.WriteString("\n")
			}
			joined := all.String()

			s.Require().Contains(joined, marker, "Marker line missing from the store")
			s.Require().Contains(joined, "a line split across two separate chunks",
				"Split line was not reassembled")
			s.Require().NotContains(joined, "hunter2", "Secret survived redaction")
			s.T().Logf("Success: %d entries stored, split line reassembled, secret masked", len(entries))
		})
	})

	// --- STEP 4: SESSION DIRECTORY ---
	s.Run("Step 4: Session appears in the directory", func() {
		s.WithCollector("Listing sessions", func(ctx context.Context, client pb.CollectorServiceClient) {
			resp, err := client.ListSessions(ctx, &pb.ListSessionsRequest{})
			s.Require().NoError(err)

			found := false
			for _, sess := range resp.GetSessions() {
				if sess.GetId() == sessionID {
					found = true
					s.Require().Equal("e2e-suite", sess.GetApp())
					break
				}
			}
			s.Require().True(found, "Ingested session missing from the directory")
		})
	})
}
