// Package runtime handles chunk ingestion, event propagation, and worker
// supervision. It orchestrates the pipeline without containing business
// logic or domain rules.
package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"debug-lab/contract"
	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/domain/search"
	"debug-lab/errors"
	"debug-lab/infrastructure/storage"
	"debug-lab/observability"
	"debug-lab/projection"
	"debug-lab/redact"
	"debug-lab/runtime/workers"
	"debug-lab/sink"
)

//go:embed rules/*
var rulesFolder embed.FS

var _ contract.ICollector = (*Collector)(nil)

type Collector struct {
	mu                   sync.Mutex
	log                  *slog.Logger
	numWorkers           int
	sessions             map[domain.SessionID]domain.Session
	permanentSinks       []contract.EventSink
	supervisor           contract.ISupervisor
	registry             contract.IRegistry
	commands             chan domain.Command
	rawEvents            chan event.Event
	streamEvents         chan event.Event
	telemetryEvents      chan event.Event
	entryRepository      storage.IEntryRepository
	searchRepository     storage.ISearchRepository
	monitoring           *observability.MonitoringManager
	timeline             *projection.Timeline
	sinkTimeout          time.Duration
	bufferTimeout        time.Duration
	metricInterval       time.Duration
	latencyThreshold     time.Duration
	ingestionTimeout     time.Duration
	maskChar             rune
	lowCapacityThreshold int
	maxContentLength     int
	maxBatchSize         int
	timelineCapacity     int
}

func NewCollector(log *slog.Logger, supervisor *workers.Supervisor,
	registry *Registry, telemetryChan, eventChan chan event.Event,
	entryRepository storage.IEntryRepository,
	searchRepository storage.ISearchRepository,
	monitoring *observability.MonitoringManager,
	numWorkers, bufferSize int,
	sinkTimeout, bufferTimeout, metricInterval, latencyThreshold, ingestionTimeout time.Duration,
	maskChar rune,
	lowCapacityThreshold, maxContentLength, maxBatchSize, timelineCapacity int) *Collector {
	return &Collector{
		log:                  log,
		numWorkers:           numWorkers,
		sessions:             make(map[domain.SessionID]domain.Session),
		permanentSinks:       nil,
		supervisor:           supervisor,
		registry:             registry,
		commands:             make(chan domain.Command, bufferSize),
		rawEvents:            make(chan event.Event, bufferSize),
		streamEvents:         eventChan,
		telemetryEvents:      telemetryChan,
		entryRepository:      entryRepository,
		searchRepository:     searchRepository,
		monitoring:           monitoring,
		sinkTimeout:          sinkTimeout,
		bufferTimeout:        bufferTimeout,
		metricInterval:       metricInterval,
		latencyThreshold:     latencyThreshold,
		ingestionTimeout:     ingestionTimeout,
		maskChar:             maskChar,
		lowCapacityThreshold: lowCapacityThreshold,
		maxContentLength:     maxContentLength,
		maxBatchSize:         maxBatchSize,
		timelineCapacity:     timelineCapacity,
	}
}

// OpenSession registers a connected stream and primes the assembler
// with its line buffer before any chunk is accepted.
func (o *Collector) OpenSession(session domain.Session) {
	o.mu.Lock()
	if _, ok := o.sessions[session.ID]; ok {
		o.mu.Unlock()
		o.log.Info(fmt.Sprintf("Session %s already exists", session.ID))
		return
	}
	o.sessions[session.ID] = session
	open := len(o.sessions)
	o.mu.Unlock()

	o.monitoring.IncrSessionsOpened()
	o.monitoring.AddSession(string(session.ID), session.App, session.Host, "open")
	o.monitoring.SetOpenSessions(open)

	o.send(domain.OpenSessionCommand{Meta: session})
}

// CloseSession flushes whatever the stream left unterminated.
func (o *Collector) CloseSession(sessionID domain.SessionID, received uint64) {
	o.mu.Lock()
	session, ok := o.sessions[sessionID]
	if ok {
		delete(o.sessions, sessionID)
	}
	open := len(o.sessions)
	o.mu.Unlock()

	if !ok {
		o.log.Info(fmt.Sprintf("Session %s is not open, close ignored", sessionID))
		return
	}

	o.monitoring.AddSession(string(session.ID), session.App, session.Host, "closed")
	o.monitoring.SetOpenSessions(open)

	o.send(domain.CloseSessionCommand{
		SessionID: string(sessionID),
		Received:  received,
		At:        time.Now().UTC(),
	})
}

func (o *Collector) RegisterSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Dispatch pushes one raw chunk into the pipeline. The send applies
// backpressure up to the ingestion timeout, then reports saturation to
// the caller instead of dropping silently.
func (o *Collector) Dispatch(ctx context.Context, cmd domain.AppendChunkCommand) error {
	o.monitoring.IncrChunksReceived()
	o.monitoring.IncrIngestBytes(uint64(len(cmd.Text)))

	select {
	case o.commands <- cmd:
		return nil
	case <-time.After(o.ingestionTimeout):
		return errors.ErrPipelineSaturated
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Collector) GetEntries(cmd domain.GetEntriesCommand) ([]domain.Entry, *string, error) {
	return o.entryRepository.GetEntries(cmd.Session(), cmd.Cursor)
}

func (o *Collector) SearchEntries(ctx context.Context, query search.Query) ([]domain.Entry, uint64, error) {
	return o.searchRepository.SearchPaginated(ctx, query)
}

func (o *Collector) ListSessions() ([]domain.Session, error) {
	return o.entryRepository.ListSessions()
}

// RecentEntries exposes the in-memory timeline for the stats page.
func (o *Collector) RecentEntries() []domain.Entry {
	if o.timeline == nil {
		return nil
	}
	return o.timeline.Recent()
}

func (o *Collector) RegisterViewer(viewerID string, sessionID domain.SessionID, s contract.EventSink) {
	o.registry.Subscribe(viewerID, sessionID, s)
}

// UnregisterViewer disconnects a tail.
func (o *Collector) UnregisterViewer(viewerID string, sessionID domain.SessionID) {
	o.registry.Unsubscribe(viewerID, sessionID)
}

// Start initiates the collector by preparing all components (workers, redaction, pipeline)
// and then starting the supervisor. It uses a preparation pattern to minimize mutex locking time.
func (o *Collector) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	// Heavy tasks like I/O (loading files) and CPU (Aho-Corasick build) are done here.
	assembler := o.prepareAssembler()

	scrubWorkers, err := o.prepareScrubbers("rules", o.maskChar)
	if err != nil {
		return err
	}

	fanoutWorker, newSinks := o.preparePipeline()
	observers := o.prepareObservability()

	// 2. Critical Section (Short Lock)
	// We only lock to update the internal state and the supervisor.
	o.mu.Lock()
	o.permanentSinks = append(o.permanentSinks, newSinks...)

	// Registering all workers to the supervisor
	o.supervisor.Add(assembler)
	for _, w := range scrubWorkers {
		o.supervisor.Add(w)
	}
	o.supervisor.Add(fanoutWorker)
	for _, w := range observers {
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting collector and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// prepareAssembler creates the single worker rebuilding logical lines
// out of raw chunks. One instance owns every session buffer.
func (o *Collector) prepareAssembler() contract.Worker {
	return workers.NewAssemblerWorker(o.commands, o.rawEvents, o.log, o.maxContentLength)
}

// prepareScrubbers loads the redaction rules and builds the Aho-Corasick automaton.
func (o *Collector) prepareScrubbers(path string, maskChar rune) ([]contract.Worker, error) {
	loader := NewRulesLoader(rulesFolder)
	data, err := loader.LoadAll(path)
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d rules files loaded [%s]",
		len(data.Kinds), strings.Join(data.Kinds, ",")))
	o.log.Info(fmt.Sprintf("%d unique markers loaded", len(data.Markers)))

	redactor, err := redact.NewRedactor(data.Markers, maskChar, o.log)
	if err != nil {
		return nil, err
	}

	res := make([]contract.Worker, 0, o.numWorkers)
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewScrubWorker(redactor, o.rawEvents, o.streamEvents, o.telemetryEvents, o.log))
	}
	return res, nil
}

// preparePipeline initializes the sinks and the fanout worker.
func (o *Collector) preparePipeline() (contract.Worker, []contract.EventSink) {
	o.timeline = projection.NewTimeline(o.timelineCapacity)

	// Local sinks that will be added to permanentSinks
	newSinks := []contract.EventSink{
		o.timeline,
		sink.NewDiskSink(o.entryRepository, o.log),
		sink.NewIndexSink(o.searchRepository, o.log, o.maxBatchSize, o.bufferTimeout),
	}

	// We prepare the fanout with current permanent sinks + the new ones
	allSinks := append(o.permanentSinks, newSinks...)

	fanoutWorker := workers.NewEventFanoutWorker(
		o.log,
		allSinks,
		o.registry,
		o.streamEvents,
		o.telemetryEvents,
		o.sinkTimeout,
	)

	return fanoutWorker, newSinks
}

// prepareObservability wires the telemetry drain and the samplers
// feeding it.
func (o *Collector) prepareObservability() []contract.Worker {
	counter := event.NewCounter()
	handlers := []event.Handler{
		event.NewLatencyHandler(o.log, o.latencyThreshold),
		event.NewRedactionHandler(o.log),
		event.NewEntryReadyHandler(o.log, counter),
		event.NewChannelCapacityHandler(o.log, o.lowCapacityThreshold),
		event.NewSelfStatsHandler(o.log),
		event.NewWorkerRestartedAfterPanicHandler(o.log, counter),
		observability.NewTelemetryBridge(o.monitoring),
	}

	channels := []workers.NamedChannel{
		{Name: "commands", Channel: o.commands},
		{Name: "rawEvents", Channel: o.rawEvents},
		{Name: "streamEvents", Channel: o.streamEvents},
		{Name: "telemetryEvents", Channel: o.telemetryEvents},
	}

	return []contract.Worker{
		workers.NewTelemetryWorker(o.log, o.metricInterval, o.telemetryEvents, handlers),
		workers.NewChannelCapacityWorker(o.log, channels, o.telemetryEvents, o.metricInterval),
		workers.NewSelfStatsWorker(o.log, o.telemetryEvents, o.monitoring, o.metricInterval),
	}
}

// send carries control commands into the pipeline. They share the
// chunk channel so a close can never overtake the chunks before it.
func (o *Collector) send(cmd domain.Command) {
	select {
	case o.commands <- cmd:
	case <-time.After(o.ingestionTimeout):
		o.log.Warn(fmt.Sprintf("Command channel saturated, dropping command for session %s", cmd.Session()))
	}
}

// Stop initiates a graceful shutdown of the collector.
// It cancels the supervision context to signal workers to stop.
func (o *Collector) Stop() {
	o.log.Info("Requesting collector shutdown")
	o.supervisor.Stop()
}
