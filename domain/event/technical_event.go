package event

import (
	"debug-lab/domain"
)

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	SelfStatsType           Type = "SELF_STATS"
	RedactionHitType        Type = "REDACTION_HIT"
	EntryDroppedType        Type = "ENTRY_DROPPED"
)

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

// SelfStats reports the collector's own process footprint.
type SelfStats struct {
	PID        domain.PID
	Status     domain.PIDStatus
	Cpu        float64
	Ram        uint64
	Goroutines int
	HeapAlloc  uint64
}

// RedactionHit is raised once per masked secret marker.
type RedactionHit struct {
	Marker  string
	Session domain.SessionID
}

// EntryDropped is raised when a sink could not keep up and an entry
// was discarded instead of blocking the pipeline.
type EntryDropped struct {
	SinkName string
	Session  domain.SessionID
}
