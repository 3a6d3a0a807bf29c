package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"debug-lab/internal"
	pb4 "debug-lab/proto/storage"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/proto"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (Collector) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Start Debug Server Only
	// We provide a static stats provider since the pipeline isn't running here
	staticStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("🌐 Viewer started at http://localhost:%d/inspect\n", config.DebugPort)

	internal.StartDebugServer(db, config.DebugPort, "/inspect", EntryMapper, staticStats)

	// The server runs in its own goroutine, block until the OS asks us to leave.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}

// Copy of the collector's EntryMapper to keep the viewer independent
func EntryMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var p pb4.Entry
	if err := proto.Unmarshal(val, &p); err != nil {
		return row
	}

	row.Type = strings.ToUpper(p.Level)
	row.Detail = p.Text

	meta := fmt.Sprintf("seq:%d app:%s", p.Seq, p.App)
	if p.Category != "" {
		meta += " cat:" + p.Category
	}
	if p.Redacted {
		meta += " redacted"
	}
	row.Scores = meta

	return row
}
