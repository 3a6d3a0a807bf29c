//go:generate go run go.uber.org/mock/mockgen -source=entry_repository.go -destination=../../mocks/mock_entry_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"debug-lab/domain"
	pb "debug-lab/proto/storage"
)

type IEntryRepository interface {
	StoreEntry(entry domain.Entry) error
	GetEntries(session domain.SessionID, cursor *string) ([]domain.Entry, *string, error)
	StoreSession(session domain.Session) error
	ListSessions() ([]domain.Session, error)
}

type EntryRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitEntries *int
}

func NewEntryRepository(db *badger.DB, log *slog.Logger, limitEntries *int) EntryRepository {
	return EntryRepository{db: db, log: log, limitEntries: limitEntries}
}

// StoreEntry persists an entry in BadgerDB.
// The key is formatted as "ent:{session_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two entries
//     arrive at the same nanosecond.
func (r EntryRepository) StoreEntry(entry domain.Entry) error {
	key := fmt.Sprintf("ent:%s:%019d:%s",
		entry.Session,
		entry.At.UnixNano(),
		entry.ID,
	)
	bytes, err := proto.Marshal(lo.ToPtr(fromEntry(entry)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		err = txn.Set([]byte(key), bytes)
		return err
	})
}

// GetEntries retrieves entries for a specific session using a prefix scan.
// Thanks to the padded timestamp in the key, entries are naturally sorted by time.
// It stops collecting entries once the configured limitEntries is reached.
func (r EntryRepository) GetEntries(session domain.SessionID, cursor *string) ([]domain.Entry, *string, error) {
	var byteEntries [][]byte
	var entries []domain.Entry
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("ent:%s:", session)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Let's go past the newest position ent:<session>:9999999999999999999
			// Then, we walk backwards and collect a page
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitEntries != nil && len(byteEntries) == *r.limitEntries {
				r.log.Debug(fmt.Sprintf("Maximum of %d entries reached", *r.limitEntries))
				break
			}
			item := it.Item()
			// Memorize cursor part of the actual key
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				byteEntries = append(byteEntries, value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	for _, b := range byteEntries {
		var entryPb pb.Entry
		if err = proto.Unmarshal(b, &entryPb); err != nil {
			return nil, nil, err
		}
		entry, err := toEntry(&entryPb)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry)
	}
	return entries, &lastKey, err
}

// StoreSession persists the metadata of an emitting process under "ses:{session_id}".
func (r EntryRepository) StoreSession(session domain.Session) error {
	key := fmt.Sprintf("ses:%s", session.ID)
	bytes, err := proto.Marshal(fromSession(session))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListSessions scans all known sessions, oldest key first.
func (r EntryRepository) ListSessions() ([]domain.Session, error) {
	var sessions []domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("ses:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var sessionPb pb.Session
				if err := proto.Unmarshal(value, &sessionPb); err != nil {
					return err
				}
				sessions = append(sessions, toSession(&sessionPb))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sessions, err
}

func fromEntry(entry domain.Entry) pb.Entry {
	return pb.Entry{
		Id:        entry.ID.String(),
		SessionId: string(entry.Session),
		App:       entry.App,
		Host:      entry.Host,
		Pid:       int32(entry.PID),
		Category:  entry.Category,
		Level:     string(entry.Level),
		Lang:      entry.Lang,
		Text:      entry.Text,
		Redacted:  entry.Redacted,
		Seq:       entry.Seq,
		At:        entry.At.UnixNano(),
	}
}

func toEntry(entryPb *pb.Entry) (domain.Entry, error) {
	parsedID, err := uuid.Parse(entryPb.Id)
	if err != nil {
		return domain.Entry{}, err
	}
	return domain.Entry{
		ID:       parsedID,
		Session:  domain.SessionID(entryPb.SessionId),
		App:      entryPb.App,
		Host:     entryPb.Host,
		PID:      int(entryPb.Pid),
		Category: entryPb.Category,
		Level:    domain.Level(entryPb.Level),
		Lang:     entryPb.Lang,
		Text:     entryPb.Text,
		Redacted: entryPb.Redacted,
		Seq:      entryPb.Seq,
		At:       time.Unix(0, entryPb.At).UTC(),
	}, nil
}

func fromSession(session domain.Session) *pb.Session {
	return &pb.Session{
		Id:        string(session.ID),
		App:       session.App,
		Host:      session.Host,
		Pid:       int32(session.PID),
		StartedAt: session.StartedAt.UnixNano(),
	}
}

func toSession(sessionPb *pb.Session) domain.Session {
	return domain.Session{
		ID:        domain.SessionID(sessionPb.Id),
		App:       sessionPb.App,
		Host:      sessionPb.Host,
		PID:       int(sessionPb.Pid),
		StartedAt: time.Unix(0, sessionPb.StartedAt).UTC(),
	}
}
