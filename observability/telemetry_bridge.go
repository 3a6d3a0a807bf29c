package observability

import (
	"debug-lab/domain/event"
)

// TelemetryBridge feeds the monitoring counters from pipeline telemetry
// so the stats page reflects live traffic.
type TelemetryBridge struct {
	monitoring *MonitoringManager
}

func NewTelemetryBridge(monitoring *MonitoringManager) *TelemetryBridge {
	return &TelemetryBridge{monitoring: monitoring}
}

func (b *TelemetryBridge) Handle(e event.Event) {
	switch e.Type {
	case event.EntryReadyType:
		b.monitoring.IncrEntriesStored()
	case event.RedactionHitType:
		b.monitoring.IncrRedactionHits()
	case event.EntryDroppedType:
		b.monitoring.IncrEntriesDropped()
	case event.RestartedAfterPanicType:
		b.monitoring.IncrErrorCount()
	}
}
