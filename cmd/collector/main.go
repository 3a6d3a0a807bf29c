package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"debug-lab/infrastructure/grpc/server"
	"debug-lab/infrastructure/storage"
	"debug-lab/internal"
	"debug-lab/observability"
	pb2 "debug-lab/proto/account"
	pb1 "debug-lab/proto/collector"
	pb4 "debug-lab/proto/storage"
	"debug-lab/runtime"
	"debug-lab/runtime/workers"
	"debug-lab/services"

	"debug-lab/domain/event"

	"github.com/blugelabs/bluge"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	grpc3 "github.com/mama165/sdk-go/grpc"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Collector terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	maskChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// Must happen before any gRPC call, grpclog is not mutex-protected.
	server.RedirectGrpcLogs(logger)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	options := buildBadgerOpts(config, logger, ctx)

	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}

	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeCfg := bluge.DefaultConfig(config.BlugeFilepath)
	blugeWriter, err := bluge.OpenWriter(blugeCfg)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Setup Supervision & Pipeline
	telemetryChan := make(chan event.Event, config.BufferSize)
	eventChan := make(chan event.Event, config.BufferSize)
	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	registry := runtime.NewRegistry()
	entryRepository := storage.NewEntryRepository(db, logger, config.LimitEntries)
	searchRepository := storage.NewSearchRepository(blugeWriter, logger, lo.ToPtr(50), config.MaxBatchSize)
	userRepository := storage.NewUserRepository(db)
	monitor := observability.NewMonitoringManager(logger)

	collector := runtime.NewCollector(
		logger, sup, registry, telemetryChan, eventChan,
		entryRepository,
		searchRepository,
		monitor,
		config.NumberOfWorkers, config.BufferSize,
		config.SinkTimeout, config.BufferTimeout, config.MetricInterval, config.LatencyThreshold, config.IngestionTimeout,
		maskChar,
		config.LowCapacityThreshold,
		config.MaxContentLength,
		config.MaxBatchSize,
		config.TimelineCapacity,
	)

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		internal.StartDebugServer(db, config.DebugPort, endpoint, EntryMapper, func() map[string]any {
			stats := monitor.GetLatest()
			return map[string]any{
				"Sessions": stats.OpenSessions,
				"Chunks":   stats.ChunksReceived,
				"Entries":  stats.EntriesStored,
				"Dropped":  stats.EntriesDropped,
			}
		})
	}

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error (gRPC & Collector)
	errChan := make(chan error, 2)

	// 5. Start the Engine (Workers and Fanout)
	go monitor.Listen(ctx)
	go func() {
		logger.Info("Starting collector...")
		if err := collector.Start(ctx); err != nil {
			errChan <- fmt.Errorf("collector error: %w", err)
		}
	}()

	// 6. gRPC Server Setup
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			server.AuthInterceptor(config.AuthEnabled),
		))
	collectorService := services.NewCollectorService(collector)
	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)
	collectorServer := server.NewCollectorServer(logger, collectorService, config.ConnectionBufferSize, config.BufferTimeout, telemetryChan)
	authServer := server.NewAuthServer(authService)
	pb1.RegisterCollectorServiceServer(s, collectorServer)
	pb2.RegisterAuthServiceServer(s, authServer)

	// The monitoring dashboard runs on its own HTTP port next to the gRPC listener.
	monitoringServer := server.NewMonitoringServer(monitor)
	go func() {
		if err := monitoringServer.Start(config.MonitoringPort); err != nil {
			logger.Error("Monitoring server stopped", "error", err)
		}
	}()

	// Use an error channel to capture Serve() issues asynchronously.
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("📡 gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// We allow active gRPC streams to finish and workers to drain their channels.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	collector.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// EntryMapper renders a stored entry for the Badger inspector.
func EntryMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var p pb4.Entry
	if err := proto.Unmarshal(val, &p); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	// Le niveau devient le type affiché (WRITE, ASSERT, FAIL...)
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
