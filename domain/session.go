package domain

import "time"

type SessionID string

// Session identifies one connected debug stream and the process
// behind it.
type Session struct {
	ID        SessionID
	App       string
	Host      string
	PID       int
	StartedAt time.Time
}

// AllSessions subscribes a viewer to every session at once.
const AllSessions SessionID = ""
