package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/grpclog"
)

// slogWriter is a custom io.Writer that redirects a foreign log stream
// to the main application's slog.Logger. It tags each entry with the
// stream's origin to provide clear traceability next to collector logs.
type slogWriter struct {
	logger *slog.Logger
	origin string
	level  slog.Level
}

// Write implements the io.Writer interface. It captures the bytes from the
// library, converts them to a string, and logs them at the configured
// severity level while maintaining the origin's context.
func (w slogWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	// Clean the message (remove trailing newlines that loggers often add)
	msg := strings.TrimRight(string(p), "\r\n")
	w.logger.Log(context.Background(), w.level, msg, "origin", w.origin)

	return len(p), nil
}

// RedirectGrpcLogs routes grpc-go's internal logging through slog.
// Info chatter lands at debug level so it only surfaces when the
// collector itself runs verbose.
func RedirectGrpcLogs(logger *slog.Logger) {
	grpclog.SetLoggerV2(grpclog.NewLoggerV2(
		slogWriter{logger: logger, origin: "grpc", level: slog.LevelDebug},
		slogWriter{logger: logger, origin: "grpc", level: slog.LevelWarn},
		slogWriter{logger: logger, origin: "grpc", level: slog.LevelError},
	))
}
