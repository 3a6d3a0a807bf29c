package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RecentSessionInfo représente une session dans le pipeline gRPC
type RecentSessionInfo struct {
	ID        string `json:"id"`
	App       string `json:"app"`
	Host      string `json:"host"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// MonitoringStats agrège toutes les métriques pour l'UI
type MonitoringStats struct {
	// --- INGEST METRICS ---
	IngestSpeed    float64 `json:"ingest_speed"` // Mo/s (flux brut reçu)
	ChunksReceived uint64  `json:"chunks_received"`
	EntriesStored  uint64  `json:"entries_stored"`
	EntriesDropped uint64  `json:"entries_dropped"`
	RedactionHits  uint64  `json:"redaction_hits"`

	// --- SESSION METRICS ---
	OpenSessions   int                 `json:"open_sessions"`
	SessionsOpened uint64              `json:"sessions_opened"`
	RecentSessions []RecentSessionInfo `json:"recent_sessions"`

	// --- SYSTEM METRICS ---
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	RssBytes   uint64  `json:"rss_bytes"`
	CpuPercent float64 `json:"cpu_percent"`
	Goroutines int     `json:"goroutines"`
	HeapAlloc  uint64  `json:"heap_alloc"`
}

// MonitoringManager gère la télémétrie en temps réel
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	// Compteurs atomiques pour les débits (en bytes)
	IngestBytes    uint64
	ChunksReceived uint64
	EntriesStored  uint64
	EntriesDropped uint64
	RedactionHits  uint64
	SessionsOpened uint64
	ErrorCount     uint64
	LastCheck      time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		LastCheck: time.Now(),
		latestStats: MonitoringStats{
			RecentSessions: make([]RecentSessionInfo, 0),
		},
	}
}

func (mm *MonitoringManager) IncrErrorCount() {
	atomic.AddUint64(&mm.ErrorCount, 1)
}

func (mm *MonitoringManager) IncrChunksReceived() {
	atomic.AddUint64(&mm.ChunksReceived, 1)
}

func (mm *MonitoringManager) IncrEntriesStored() {
	atomic.AddUint64(&mm.EntriesStored, 1)
}

func (mm *MonitoringManager) IncrEntriesDropped() {
	atomic.AddUint64(&mm.EntriesDropped, 1)
}

func (mm *MonitoringManager) IncrRedactionHits() {
	atomic.AddUint64(&mm.RedactionHits, 1)
}

func (mm *MonitoringManager) IncrSessionsOpened() {
	atomic.AddUint64(&mm.SessionsOpened, 1)
}

// IncrIngestBytes ajoute des bytes reçus par le collecteur
func (mm *MonitoringManager) IncrIngestBytes(n uint64) {
	atomic.AddUint64(&mm.IngestBytes, n)
}

// AddSession ajoute une session récente à la liste (thread-safe)
func (mm *MonitoringManager) AddSession(id, app, host, status string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	session := RecentSessionInfo{
		ID:        id,
		App:       app,
		Host:      host,
		Status:    status,
		Timestamp: time.Now().Format("15:04:05"),
	}

	// Ajouter au début de la liste
	mm.latestStats.RecentSessions = append([]RecentSessionInfo{session}, mm.latestStats.RecentSessions...)

	// Garder seulement les 20 dernières
	if len(mm.latestStats.RecentSessions) > 20 {
		mm.latestStats.RecentSessions = mm.latestStats.RecentSessions[:20]
	}
}

func (mm *MonitoringManager) SetOpenSessions(n int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.OpenSessions = n
}

// UpdateSelfStats reçoit les mesures gopsutil du SelfStatsWorker
func (mm *MonitoringManager) UpdateSelfStats(rss uint64, cpu float64, goroutines int, heapAlloc uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.RssBytes = rss
	mm.latestStats.CpuPercent = cpu
	mm.latestStats.Goroutines = goroutines
	mm.latestStats.HeapAlloc = heapAlloc
}

// Listen met à jour périodiquement les stats calculées
func (mm *MonitoringManager) Listen(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("🛑 Monitoring manager arrêté")
			return

		case <-ticker.C:
			mm.updateStats()
		}
	}
}

// updateStats calcule les débits depuis le dernier passage
func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	duration := now.Sub(mm.LastCheck).Seconds()

	if duration > 0 {
		// Lire et réinitialiser le compteur de bytes
		iBytes := atomic.SwapUint64(&mm.IngestBytes, 0)

		// Calculer la vitesse en MB/s
		mm.latestStats.IngestSpeed = (float64(iBytes) / 1024 / 1024) / duration
	}
	mm.LastCheck = now

	// Charger les compteurs cumulés
	mm.latestStats.ChunksReceived = atomic.LoadUint64(&mm.ChunksReceived)
	mm.latestStats.EntriesStored = atomic.LoadUint64(&mm.EntriesStored)
	mm.latestStats.EntriesDropped = atomic.LoadUint64(&mm.EntriesDropped)
	mm.latestStats.RedactionHits = atomic.LoadUint64(&mm.RedactionHits)
	mm.latestStats.SessionsOpened = atomic.LoadUint64(&mm.SessionsOpened)

	// Métriques système Go
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	// Log pour debug
	mm.log.Debug("📊 Stats mises à jour",
		"ingest_speed", mm.latestStats.IngestSpeed,
		"chunks_received", mm.latestStats.ChunksReceived,
		"entries_stored", mm.latestStats.EntriesStored,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return mm.latestStats
}
