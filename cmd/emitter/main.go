package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"debug-lab/dbg"
	pb "debug-lab/proto/account"
	"debug-lab/relay"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the emitter application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the emitter-side environment variables.
type Config struct {
	CollectorAddress string        `env:"COLLECTOR_ADDR,default=localhost:8080"`
	AppName          string        `env:"EMITTER_APP_NAME,default=demo-emitter"`
	AuthEmail        string        `env:"EMITTER_AUTH_EMAIL"`
	AuthPassword     string        `env:"EMITTER_AUTH_PASSWORD"`
	BufferSize       int           `env:"EMITTER_BUFFER_SIZE,default=256"`
	RetryBackoff     time.Duration `env:"EMITTER_RETRY_BACKOFF,default=2s"`
	EmitInterval     time.Duration `env:"EMITTER_INTERVAL,default=500ms"`
	LogLevel         string        `env:"LOG_LEVEL,required=true"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Emitter error: %v", err)
	}
	os.Exit(code)
}

// run wires the debug facade to a relay and produces traffic until interrupted.
// The interesting part is the ordering: the relay must be running before the
// facade points at it, and the facade must be detached before the relay drains.
func run() (int, error) {
	// 1. Parsing des options (replay file)
	replayPath := flag.String("replay", "", "replay a log file instead of generating demo traffic")
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

	// 4. Obtain a token when the collector runs with authentication enabled.
	token := ""
	if config.AuthEmail != "" {
		var err error
		token, err = login(ctx, config)
		if err != nil {
			return exitRuntime, fmt.Errorf("login failed: %w", err)
		}
		log.Info("Authenticated against collector", "email", config.AuthEmail)
	}

	// 5. Start the relay and point the debug facade at it.
	session := relay.NewSession(config.AppName)
	r := relay.NewRelay(log, config.CollectorAddress, token, session, config.BufferSize, config.RetryBackoff)

	relayCtx, cancelRelay := context.WithCancel(ctx)
	defer cancelRelay()

	relayDone := make(chan error, 1)
	go func() {
		relayDone <- r.Run(relayCtx)
	}()

	dbg.SetSink(r)

	if !dbg.Enabled {
		log.Warn("Built without the debug tag, every emit below compiles to a no-op")
	}

	log.Info(fmt.Sprintf(">>> Emitting as %q towards %s (Ctrl+C to quit)...",
		config.AppName, config.CollectorAddress))

	// 6. Replay mode: push the file line by line, then drain and leave.
	if *replayPath != "" {
		if err := replayFile(*replayPath); err != nil {
			return exitRuntime, fmt.Errorf("replay failed: %w", err)
		}
		log.Info(fmt.Sprintf("Replayed %s, draining...", *replayPath))
		cancelRelay()
		<-relayDone
		if dropped := r.Dropped(); dropped > 0 {
			log.Warn(fmt.Sprintf("%d chunks were dropped locally, raise EMITTER_BUFFER_SIZE", dropped))
		}
		return exitOK, nil
	}

	// 7. Demo traffic loop.
	ticker := time.NewTicker(config.EmitInterval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping emitter...")
			// Wait for the relay to push the close frame and collect the summary.
			<-relayDone
			if dropped := r.Dropped(); dropped > 0 {
				log.Warn(fmt.Sprintf("%d chunks were dropped locally", dropped))
			}
			return exitOK, nil
		case <-ticker.C:
			i++
			emitDemoTraffic(i)
		}
	}
}

// replayFile feeds every line of a recorded log through the debug facade.
// WriteLine owns the line terminator, so the recorded one is stripped first.
func replayFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		dbg.WriteLine(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return scanner.Err()
}

// login performs a one-shot Login call and returns the issued token.
func login(ctx context.Context, config Config) (string, error) {
	conn, err := grpc.NewClient(config.CollectorAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return "", err
	}
	defer conn.Close()

	client := pb.NewAuthServiceClient(conn)
	loginCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := client.Login(loginCtx, &pb.LoginRequest{
		Email:    config.AuthEmail,
		Password: config.AuthPassword,
	})
	if err != nil {
		return "", err
	}
	return resp.GetToken(), nil
}

// emitDemoTraffic exercises the whole debug surface: plain writes,
// categories, conditions, multi-chunk payloads and assertions.
func emitDemoTraffic(i int) {
	dbg.WriteLine(fmt.Sprintf("tick %d from the demo emitter", i))
	dbg.WriteLineIf(i%5 == 0, fmt.Sprintf("fifth tick checkpoint, i=%d", i), "checkpoint")
	dbg.Write("partial ", "net")
	dbg.WriteLine(fmt.Sprintf("write completed on tick %d", i), "net")

	// Every 20 ticks, push a message larger than one chunk to exercise splitting.
	if i%20 == 0 {
		payload := make([]byte, 3*dbg.MaxChunkLen/2)
		for j := range payload {
			payload[j] = 'a' + byte(j%26)
		}
		dbg.WriteLine(string(payload), "bulk")
	}

	dbg.Assert(i%100 != 99, "tick counter hit the demo assertion", "this failure is intentional traffic")
}
