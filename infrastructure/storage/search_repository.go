//go:generate go run go.uber.org/mock/mockgen -source=search_repository.go -destination=../../mocks/mock_search_repository.go -package=mocks
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/index"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"debug-lab/domain"
	"debug-lab/domain/search"
	"debug-lab/errors"
	pb "debug-lab/proto/storage"
)

type ISearchRepository interface {
	Index(entry domain.Entry) error
	IndexBatch(entries []domain.Entry) error
	Flush() error
	SearchPaginated(ctx context.Context, query search.Query) ([]domain.Entry, uint64, error)
	SearchByTimeRange(ctx context.Context, from, to time.Time, session domain.SessionID) ([]domain.Entry, uint64, error)
	FetchByEntryID(ctx context.Context, session domain.SessionID, id uuid.UUID) (domain.Entry, error)
}

// SearchRepository indexes entries into Bluge for full-text lookup.
// The analyzed fields carry the searchable text while a single stored
// field holds the Protobuf form of the entry for reconstruction.
type SearchRepository struct {
	mu        sync.Mutex
	writer    *bluge.Writer
	batch     *index.Batch
	pending   int
	batchSize int
	limit     *int
	log       *slog.Logger
}

func NewSearchRepository(writer *bluge.Writer, log *slog.Logger, limit *int, batchSize int) *SearchRepository {
	return &SearchRepository{
		writer:    writer,
		batch:     bluge.NewBatch(),
		batchSize: batchSize,
		limit:     limit,
		log:       log,
	}
}

const defaultPageSize = 10

// Index queues a single entry. The batch is executed once batchSize
// documents are pending, or on an explicit Flush.
func (r *SearchRepository) Index(entry domain.Entry) error {
	doc, err := toDocument(entry)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.batch.Update(doc.ID(), doc)
	r.pending++
	if r.pending >= r.batchSize {
		return r.executeBatch()
	}
	return nil
}

// IndexBatch queues a slice of entries as one unit.
func (r *SearchRepository) IndexBatch(entries []domain.Entry) error {
	docs := make([]*bluge.Document, 0, len(entries))
	for _, entry := range entries {
		doc, err := toDocument(entry)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range docs {
		r.batch.Update(doc.ID(), doc)
		r.pending++
	}
	if r.pending >= r.batchSize {
		return r.executeBatch()
	}
	return nil
}

// Flush executes any pending batch. Safe to call repeatedly.
func (r *SearchRepository) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == 0 {
		return nil
	}
	return r.executeBatch()
}

// executeBatch runs the current batch against the writer. Callers hold the mutex.
func (r *SearchRepository) executeBatch() error {
	if err := r.writer.Batch(r.batch); err != nil {
		return fmt.Errorf("failed to execute index batch: %w", err)
	}
	r.log.Debug("Index batch executed", slog.Int("documents", r.pending))
	r.batch.Reset()
	r.pending = 0
	return nil
}

// SearchPaginated runs a full-text query restricted by the optional
// session and level filters, returning one page plus the total hit count.
func (r *SearchRepository) SearchPaginated(ctx context.Context, query search.Query) ([]domain.Entry, uint64, error) {
	boolQuery := bluge.NewBooleanQuery()
	if query.Terms != "" {
		boolQuery.AddMust(bluge.NewMatchQuery(query.Terms).SetField("text"))
	} else {
		boolQuery.AddMust(bluge.NewMatchAllQuery())
	}
	if query.Session != "" {
		boolQuery.AddMust(bluge.NewTermQuery(query.Session).SetField("session"))
	}
	if query.Level != "" {
		boolQuery.AddMust(bluge.NewTermQuery(query.Level).SetField("level"))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = lo.FromPtrOr(r.limit, defaultPageSize)
	}
	request := bluge.NewTopNSearch(limit, boolQuery).
		SetFrom(query.Offset).
		WithStandardAggregations()
	return r.runSearch(ctx, request)
}

// SearchByTimeRange returns every entry whose timestamp falls inside
// [from, to], both bounds included.
func (r *SearchRepository) SearchByTimeRange(ctx context.Context, from, to time.Time, session domain.SessionID) ([]domain.Entry, uint64, error) {
	boolQuery := bluge.NewBooleanQuery().
		AddMust(bluge.NewNumericRangeInclusiveQuery(
			float64(from.UnixMilli()),
			float64(to.UnixMilli()),
			true, true).SetField("at"))
	if session != domain.AllSessions {
		boolQuery.AddMust(bluge.NewTermQuery(string(session)).SetField("session"))
	}

	request := bluge.NewTopNSearch(lo.FromPtrOr(r.limit, defaultPageSize), boolQuery).
		WithStandardAggregations()
	return r.runSearch(ctx, request)
}

// FetchByEntryID retrieves a single indexed entry by its identifier.
func (r *SearchRepository) FetchByEntryID(ctx context.Context, session domain.SessionID, id uuid.UUID) (domain.Entry, error) {
	query := bluge.NewTermQuery(docID(session, id)).SetField("_id")
	request := bluge.NewTopNSearch(1, query).WithStandardAggregations()

	entries, _, err := r.runSearch(ctx, request)
	if err != nil {
		return domain.Entry{}, err
	}
	if len(entries) == 0 {
		return domain.Entry{}, fmt.Errorf("entry %s: %w", id, errors.ErrEntryNotFound)
	}
	return entries[0], nil
}

func (r *SearchRepository) runSearch(ctx context.Context, request bluge.SearchRequest) ([]domain.Entry, uint64, error) {
	reader, err := r.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer reader.Close()

	dmi, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var entries []domain.Entry
	match, err := dmi.Next()
	for err == nil && match != nil {
		var raw []byte
		verr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "raw" {
				raw = append([]byte(nil), value...)
			}
			return true
		})
		if verr != nil {
			return nil, 0, verr
		}

		if len(raw) > 0 {
			var entryPb pb.Entry
			if uerr := proto.Unmarshal(raw, &entryPb); uerr != nil {
				return nil, 0, uerr
			}
			entry, terr := toEntry(&entryPb)
			if terr != nil {
				return nil, 0, terr
			}
			entries = append(entries, entry)
		}
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, 0, err
	}

	return entries, dmi.Aggregations().Count(), nil
}

func toDocument(entry domain.Entry) (*bluge.Document, error) {
	raw, err := proto.Marshal(lo.ToPtr(fromEntry(entry)))
	if err != nil {
		return nil, err
	}

	doc := bluge.NewDocument(docID(entry.Session, entry.ID))
	doc.AddField(bluge.NewTextField("text", entry.Text))
	doc.AddField(bluge.NewKeywordField("session", string(entry.Session)))
	doc.AddField(bluge.NewKeywordField("level", string(entry.Level)))
	doc.AddField(bluge.NewKeywordField("category", entry.Category))
	doc.AddField(bluge.NewKeywordField("lang", entry.Lang))
	doc.AddField(bluge.NewNumericField("at", float64(entry.At.UnixMilli())))
	doc.AddField(bluge.NewNumericField("seq", float64(entry.Seq)))
	doc.AddField(bluge.NewStoredOnlyField("raw", raw))
	return doc, nil
}

func docID(session domain.SessionID, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", session, id)
}
