package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"debug-lab/observability"
)

type MonitoringServer struct {
	monitor *observability.MonitoringManager
}

func NewMonitoringServer(m *observability.MonitoringManager) *MonitoringServer {
	return &MonitoringServer{monitor: m}
}

func (s *MonitoringServer) Start(port int) error {
	mux := http.NewServeMux()

	// 1. L'API JSON consommée par le dashboard
	mux.HandleFunc("/api/monitoring", s.handleMonitoring)

	// 2. L'interface HTML statique (dossier /ui)
	fileServer := http.FileServer(http.Dir("./ui"))
	mux.Handle("/", fileServer)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	fmt.Printf("🌐 Interface disponible sur : http://localhost:%d/monitoring.html\n", port)
	return server.ListenAndServe()
}

func (s *MonitoringServer) handleMonitoring(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Snapshot calculé par le MonitoringManager (débits, sessions, mémoire)
	snapshot := s.monitor.GetLatest()

	json.NewEncoder(w).Encode(snapshot)
}
