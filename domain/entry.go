// Package domain contains core concepts of the capture system.
// This file defines debug Entry values and related rules.
// Entries are immutable once built by the scrub pipeline.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents one reassembled debug line after scrubbing and
// classification.
type Entry struct {
	ID       uuid.UUID // unique identifier
	Session  SessionID
	App      string
	Host     string
	PID      int
	Category string
	Level    Level
	Lang     string
	Text     string
	Redacted bool
	Seq      uint64
	At       time.Time
}
