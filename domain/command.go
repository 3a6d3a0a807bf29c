package domain

import (
	"time"
)

type Command interface {
	Session() SessionID
}

// AppendChunkCommand carries one raw chunk from an ingest stream into
// the pipeline.
type AppendChunkCommand struct {
	SessionID string
	Seq       uint64
	Text      string
	Category  string
	At        time.Time
}

func (c AppendChunkCommand) Session() SessionID {
	return SessionID(c.SessionID)
}

// OpenSessionCommand announces a new stream so the assembler can set
// up its line buffer before chunks arrive.
type OpenSessionCommand struct {
	Meta Session
}

func (c OpenSessionCommand) Session() SessionID {
	return c.Meta.ID
}

// CloseSessionCommand flushes whatever is left in the line buffer.
type CloseSessionCommand struct {
	SessionID string
	Received  uint64
	At        time.Time
}

func (c CloseSessionCommand) Session() SessionID {
	return SessionID(c.SessionID)
}

// GetEntriesCommand pages through stored entries, newest first.
// The page size is owned by the repository configuration.
type GetEntriesCommand struct {
	SessionID string
	Cursor    *string
}

func (c GetEntriesCommand) Session() SessionID {
	return SessionID(c.SessionID)
}
