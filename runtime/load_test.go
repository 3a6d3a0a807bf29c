package runtime_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"debug-lab/domain"
	"debug-lab/domain/event"
	"debug-lab/mocks"
	"debug-lab/observability"
	"debug-lab/runtime"
	"debug-lab/runtime/workers"
)

func TestCollector_LoadTest(t *testing.T) {
	// 1. Setup minimaliste (on mock les repos pour ne pas être bridé par le disque/Badger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := gomock.NewController(t)
	mockEntryRepo := mocks.NewMockIEntryRepository(ctrl)
	mockSearchRepo := mocks.NewMockISearchRepository(ctrl)
	mockEntryRepo.EXPECT().StoreEntry(gomock.Any()).Do(
		func(_ domain.Entry) {
			time.Sleep(2 * time.Millisecond)
		},
	).Return(nil).AnyTimes()
	mockEntryRepo.EXPECT().StoreSession(gomock.Any()).Return(nil).AnyTimes()
	mockSearchRepo.EXPECT().IndexBatch(gomock.Any()).Return(nil).AnyTimes()
	mockSearchRepo.EXPECT().Flush().Return(nil).AnyTimes()

	telemetryChan := make(chan event.Event, 5000)
	eventChan := make(chan event.Event, 5000)
	log := slog.New(slog.DiscardHandler) // On désactive les logs pour la perf

	supervisor := workers.NewSupervisor(log, telemetryChan, 100*time.Millisecond)
	registry := runtime.NewRegistry()
	monitor := observability.NewMonitoringManager(log)

	c := runtime.NewCollector(
		log, supervisor, registry, telemetryChan, eventChan,
		mockEntryRepo,
		mockSearchRepo,
		monitor,
		2,                    // numWorkers
		1000,                 // bufferSize
		100*time.Millisecond, // sinkTimeout
		500*time.Millisecond, // buffer timeout
		50*time.Millisecond,  // metric interval
		50*time.Millisecond,  // latency threshold
		50*time.Millisecond,  // wait and fail
		'*',
		800,
		4096,
		100,
		100,
	)
	go func() {
		if err := c.Start(ctx); err != nil {
			fmt.Printf("Collector failed to start: %v\n", err)
		}
	}()
	time.Sleep(100 * time.Millisecond) // Laisse le temps aux workers de démarrer

	// 2. Variables de mesure
	var successCount atomic.Uint64
	var failureCount atomic.Uint64

	numClients := 100
	chunksPerClient := 200

	// 3. Chaque client est une session connectée
	for i := 0; i < numClients; i++ {
		c.OpenSession(domain.Session{
			ID:        domain.SessionID(fmt.Sprintf("load-%d", i)),
			App:       "load-client",
			Host:      "bench",
			PID:       i,
			StartedAt: time.Now().UTC(),
		})
	}

	start := time.Now()
	var wg sync.WaitGroup

	// 4. Simulation du trafic
	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func(clientID int) {
			defer wg.Done()
			for j := 0; j < chunksPerClient; j++ {
				cmd := domain.AppendChunkCommand{
					SessionID: fmt.Sprintf("load-%d", clientID),
					Seq:       uint64(j + 1),
					Text:      "DEBUG: ceci est une ligne de test de charge\r\n",
					At:        time.Now().UTC(),
				}

				if err := c.Dispatch(ctx, cmd); err != nil {
					failureCount.Add(1)
				} else {
					successCount.Add(1)
				}
			}
		}(i)
	}

	wg.Wait()
	duration := time.Since(start)

	// 5. Résultats
	fmt.Printf("\n--- RÉSULTATS DU STRESS TEST ---\n")
	fmt.Printf("Durée totale    : %v\n", duration)
	fmt.Printf("Chunks acceptés : %d\n", successCount.Load())
	fmt.Printf("Chunks rejetés  : %d (Backpressure)\n", failureCount.Load())
	fmt.Printf("Débit (TPS)     : %.2f chunks/sec\n", float64(successCount.Load())/duration.Seconds())
	fmt.Printf("--------------------------------\n")

	// Les sinks consomment dans leurs propres goroutines, on les laisse
	// se vider avant que le contrôleur ne soit finalisé
	cancel()
	time.Sleep(300 * time.Millisecond)
}
