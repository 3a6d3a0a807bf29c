package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb2 "debug-lab/proto/account"
	pb "debug-lab/proto/collector"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Exit codes for the tail application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the tail-side environment variables.
type Config struct {
	CollectorAddress string `env:"COLLECTOR_ADDR,default=localhost:8080"`
	AuthEmail        string `env:"TAIL_AUTH_EMAIL"`
	AuthPassword     string `env:"TAIL_AUTH_PASSWORD"`
	Colours          bool   `env:"TAIL_COLOURS,default=true"`
	LogLevel         string `env:"LOG_LEVEL,required=true"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Tail error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle: configuration, authentication,
// and either a live tail or a one-shot query depending on the flags.
func run() (int, error) {
	// 1. Parsing des options (session filter, one-shot modes)
	sessionID := flag.String("session", "", "only show entries of this session")
	searchTerms := flag.String("search", "", "run a one-shot search instead of tailing")
	level := flag.String("level", "", "level filter for -search (TRACE..FATAL, ASSERT)")
	limit := flag.Int("limit", 20, "maximum results for -search")
	listSessions := flag.Bool("sessions", false, "list known sessions and exit")
	flag.Parse()

	// 2. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 3. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Establish connection to the collector.
	conn, err := grpc.NewClient(config.CollectorAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to collector at %s: %w", config.CollectorAddress, err)
	}
	// Defer ensures the connection is closed even if the stream fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	// 5. Authenticate when credentials are present, then carry the token on every call.
	if config.AuthEmail != "" {
		token, err := login(ctx, conn, config)
		if err != nil {
			return exitRuntime, fmt.Errorf("login failed: %w", err)
		}
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}

	client := pb.NewCollectorServiceClient(conn)

	// 6. One-shot modes short-circuit the live tail.
	if *listSessions {
		return renderSessions(ctx, client)
	}
	if *searchTerms != "" {
		return renderSearch(ctx, client, *searchTerms, *sessionID, *level, *limit)
	}

	return tail(ctx, client, config, *sessionID)
}

// login performs a one-shot Login call over the existing connection.
func login(ctx context.Context, conn *grpc.ClientConn, config Config) (string, error) {
	authClient := pb2.NewAuthServiceClient(conn)
	loginCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := authClient.Login(loginCtx, &pb2.LoginRequest{
		Email:    config.AuthEmail,
		Password: config.AuthPassword,
	})
	if err != nil {
		return "", err
	}
	return resp.GetToken(), nil
}

// tail opens the server stream and prints entries until interrupted.
func tail(ctx context.Context, client pb.CollectorServiceClient, config Config, sessionID string) (int, error) {
	stream, err := client.Tail(ctx, &pb.TailRequest{SessionId: sessionID})
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	scope := "all sessions"
	if sessionID != "" {
		scope = fmt.Sprintf("session %s", sessionID)
	}
	fmt.Printf(">>> Tailing %s (Ctrl+C to quit)...\n", scope)

	// Reception loop, runs until the context is canceled or the server closes.
	for {
		evt, err := stream.Recv()
		if err != nil {
			// Normal exit if the user triggered a shutdown.
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		}

		switch {
		case evt.GetEntry() != nil:
			printEntry(evt.GetEntry(), config.Colours)
		case evt.GetSession() != nil:
			printSessionChange(evt.GetSession(), config.Colours)
		}
	}
}

// printEntry renders one entry line, colorized by severity.
func printEntry(e *pb.Entry, colours bool) {
	at := time.Unix(0, e.GetAt()).Format(time.TimeOnly)
	head := fmt.Sprintf("[%s] %s/%s #%d", at, e.GetApp(), shortID(e.GetSessionId()), e.GetSeq())

	line := fmt.Sprintf("%-42s %-6s %s", head, e.GetLevel(), e.GetText())
	if colours {
		line = levelColor(e.GetLevel()).Render(line)
	}
	fmt.Println(line)
}

// printSessionChange announces sessions joining or leaving the stream.
func printSessionChange(sc *pb.SessionChange, colours bool) {
	at := time.Unix(0, sc.GetAt()).Format(time.TimeOnly)
	line := fmt.Sprintf("--- [%s] session %s is now %s ---", at, shortID(sc.GetSessionId()), sc.GetStatus())
	if colours {
		line = color.New(color.FgCyan).Render(line)
	}
	fmt.Println(line)
}

// levelColor maps a severity to its terminal style.
func levelColor(level string) color.Style {
	switch level {
	case "FATAL":
		return color.New(color.FgRed, color.OpBold)
	case "ERROR":
		return color.New(color.FgRed)
	case "ASSERT", "WARN":
		return color.New(color.FgYellow)
	case "INFO":
		return color.New(color.FgGreen)
	case "TRACE":
		return color.New(color.FgGray)
	default:
		return color.New()
	}
}

// renderSearch performs a unary Search and renders the hits as a table.
func renderSearch(ctx context.Context, client pb.CollectorServiceClient, terms, sessionID, level string, limit int) (int, error) {
	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := client.Search(callCtx, &pb.SearchRequest{
		Terms:     terms,
		SessionId: sessionID,
		Level:     level,
		Limit:     int32(limit),
	})
	if err != nil {
		return exitRuntime, fmt.Errorf("search failed: %w", err)
	}

	table := newTable([]string{"Time", "Session", "App", "Level", "Seq", "Text"})
	for _, e := range resp.GetEntries() {
		table.Append([]string{
			time.Unix(0, e.GetAt()).Format("15:04:05"),
			shortID(e.GetSessionId()),
			e.GetApp(),
			e.GetLevel(),
			fmt.Sprintf("%d", e.GetSeq()),
			e.GetText(),
		})
	}
	table.Render()
	fmt.Printf("\n%d hit(s) on %d matching entrie(s)\n", len(resp.GetEntries()), resp.GetTotal())

	return exitOK, nil
}

// renderSessions lists every known session as a table.
func renderSessions(ctx context.Context, client pb.CollectorServiceClient) (int, error) {
	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := client.ListSessions(callCtx, &pb.ListSessionsRequest{})
	if err != nil {
		return exitRuntime, fmt.Errorf("list sessions failed: %w", err)
	}

	table := newTable([]string{"Session", "App", "Host", "PID", "Started At"})
	for _, s := range resp.GetSessions() {
		table.Append([]string{
			s.GetId(),
			s.GetApp(),
			s.GetHost(),
			fmt.Sprintf("%d", s.GetPid()),
			time.Unix(0, s.GetStartedAt()).Format(time.DateTime),
		})
	}
	table.Render()

	return exitOK, nil
}

// newTable applies the house style: no borders, left aligned, tab padded.
func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// shortID keeps session identifiers readable in narrow terminals.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
