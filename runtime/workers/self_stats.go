package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"

	"debug-lab/contract"
	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/observability"
)

var _ contract.Worker = (*SelfStatsWorker)(nil)

// SelfStatsWorker samples the collector's own process footprint
// (CPU, RSS, scheduler state) and feeds both telemetry and the
// monitoring manager backing the stats page.
type SelfStatsWorker struct {
	log            *slog.Logger
	telemetryChan  chan event.Event
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
}

func NewSelfStatsWorker(
	log *slog.Logger,
	telemetryChan chan event.Event,
	monitoring *observability.MonitoringManager,
	metricInterval time.Duration,
) *SelfStatsWorker {
	return &SelfStatsWorker{
		log:            log,
		telemetryChan:  telemetryChan,
		monitoring:     monitoring,
		metricInterval: metricInterval,
	}
}

func (w *SelfStatsWorker) Run(ctx context.Context) error {
	w.log.Info("Starting self stats worker")
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)
			goroutines := runtime.NumGoroutine()

			w.monitoring.UpdateSelfStats(rss, cpu, goroutines, mem.HeapAlloc)

			evt := event.New(event.SelfStatsType, event.SelfStats{
				PID:        domain.PID(os.Getpid()),
				Status:     domain.ToStatus(status),
				Cpu:        cpu,
				Ram:        rss,
				Goroutines: goroutines,
				HeapAlloc:  mem.HeapAlloc,
			})
			select {
			case w.telemetryChan <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
