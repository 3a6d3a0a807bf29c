package event

import (
	"time"

	"debug-lab/domain"
)

type Type string

// Event is the envelope every telemetry payload travels in.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now(), Payload: payload}
}

// StreamEvent is implemented by payloads tied to one debug session.
type StreamEvent interface {
	SessionID() domain.SessionID
}

const (
	LineAssembledType Type = "LINE_ASSEMBLED"
	EntryReadyType    Type = "ENTRY_READY"
	SessionOpenedType Type = "SESSION_OPENED"
	SessionClosedType Type = "SESSION_CLOSED"
)

// LineAssembled is one full logical line rebuilt from raw chunks,
// before scrubbing and classification.
type LineAssembled struct {
	Session  domain.SessionID
	App      string
	Host     string
	PID      int
	Seq      uint64
	Text     string
	Category string
	At       time.Time
}

func (c LineAssembled) SessionID() domain.SessionID {
	return c.Session
}

// EntryReady carries a scrubbed, classified entry to the sinks.
type EntryReady struct {
	Entry domain.Entry
}

func (e EntryReady) SessionID() domain.SessionID {
	return e.Entry.Session
}

type SessionOpened struct {
	Session domain.Session
}

func (s SessionOpened) SessionID() domain.SessionID {
	return s.Session.ID
}

type SessionClosed struct {
	Session  domain.SessionID
	Received uint64
	At       time.Time
}

func (s SessionClosed) SessionID() domain.SessionID {
	return s.Session
}
