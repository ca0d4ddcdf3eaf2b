// Package record is the document source over a Redis/Valkey JSON keyspace
// with an FT index.
package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/kailas-cloud/loksabha/internal/db"
	"github.com/kailas-cloud/loksabha/internal/domain"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
	"github.com/kailas-cloud/loksabha/internal/domain/filter"
)

const (
	defaultPrefix   = "loksabha:"
	defaultPageSize = 1000
	aggregateLimit  = 100000
)

// store is the consumer interface for records (ISP).
type store interface {
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	Aggregate(ctx context.Context, q *db.AggregateQuery) ([]map[string]string, error)
	SupportsAggregate(ctx context.Context) bool
}

// Config tunes key layout and paging.
type Config struct {
	KeyPrefix string
	PageSize  int
}

// Repo implements usecase/election.Source over db.Store.
type Repo struct {
	store    store
	prefix   string
	pageSize int
}

// New creates a record repository.
func New(s store, cfg Config) *Repo {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultPrefix
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Repo{store: s, prefix: cfg.KeyPrefix, pageSize: cfg.PageSize}
}

// EnsureIndex creates the record index. An existing index is success.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := buildIndex(r.indexName(), r.docPrefix())
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", def.Name, err)
	}
	return nil
}

// Import stores records under a freshly reserved sequence block, preserving
// their order. Returns the number stored.
func (r *Repo) Import(ctx context.Context, records []election.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	end, err := r.store.IncrBy(ctx, r.seqKey(), int64(len(records)))
	if err != nil {
		return 0, fmt.Errorf("reserve sequence: %w: %w", domain.ErrSourceUnavailable, err)
	}
	start := end - int64(len(records)) + 1

	items := make([]db.JSONSetItem, 0, len(records))
	for i := range records {
		seq := start + int64(i)
		doc := records[i].Document()
		doc[seqField] = seq
		data, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("marshal record %d: %w", i, err)
		}
		items = append(items, db.JSONSetItem{Key: r.docKey(seq), Path: "$", Data: data})
	}

	if err := r.store.JSONSetMulti(ctx, items); err != nil {
		return 0, fmt.Errorf("store records: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return len(items), nil
}

// Find returns all records matching q in insertion order.
//
// A result larger than one page is read in __seq windows of pageSize, so
// every FT.SEARCH runs at offset 0. Redis rejects offsets past
// MAXSEARCHRESULTS.
func (r *Repo) Find(ctx context.Context, q election.Query) ([]election.Record, error) {
	expr := q.Expression()
	first, err := r.search(ctx, expr)
	if err != nil {
		return nil, err
	}
	rows, err := decodePage(first)
	if err != nil {
		return nil, err
	}

	if len(first.Entries) < first.Total {
		rows, err = r.scanWindows(ctx, expr, first.Total)
		if err != nil {
			return nil, err
		}
	}

	// Valkey ignores SORTBY.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]election.Record, len(rows))
	for i := range rows {
		out[i] = rows[i].rec
	}
	return out, nil
}

type seqRecord struct {
	seq int64
	rec election.Record
}

// scanWindows walks [1, last] in pageSize-wide sequence windows. Sequence
// numbers are unique, so one window never holds more than a page.
func (r *Repo) scanWindows(ctx context.Context, expr filter.Expression, total int) ([]seqRecord, error) {
	last, err := r.store.IncrBy(ctx, r.seqKey(), 0)
	if err != nil {
		return nil, fmt.Errorf("read sequence: %w: %w", domain.ErrSourceUnavailable, err)
	}

	rows := make([]seqRecord, 0, total)
	step := int64(r.pageSize)
	for lo := int64(1); lo <= last && len(rows) < total; lo += step {
		res, err := r.search(ctx, expr.With(filter.Between(seqField, float64(lo), float64(lo+step-1))))
		if err != nil {
			return nil, err
		}
		page, err := decodePage(res)
		if err != nil {
			return nil, err
		}
		rows = append(rows, page...)
	}
	return rows, nil
}

func (r *Repo) search(ctx context.Context, expr filter.Expression) (*db.SearchResult, error) {
	res, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    r.indexName(),
		Filters:      expr,
		SortBy:       seqField,
		Limit:        r.pageSize,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search records: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return res, nil
}

func decodePage(res *db.SearchResult) ([]seqRecord, error) {
	rows := make([]seqRecord, 0, len(res.Entries))
	for _, entry := range res.Entries {
		seq, rec, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Key, err)
		}
		rows = append(rows, seqRecord{seq: seq, rec: rec})
	}
	return rows, nil
}

// GroupSeats counts records per (party, state, alliance) in first-seen order.
func (r *Repo) GroupSeats(ctx context.Context, q election.Query) ([]election.SeatGroup, error) {
	if !r.store.SupportsAggregate(ctx) {
		records, err := r.Find(ctx, q)
		if err != nil {
			return nil, err
		}
		return election.GroupSeats(records), nil
	}

	rows, err := r.store.Aggregate(ctx, &db.AggregateQuery{
		IndexName: r.indexName(),
		Filters:   q.Expression(),
		GroupBy:   []string{election.FieldParty, election.FieldState, election.FieldAlliance},
		Reducers: []db.Reducer{
			{Func: "COUNT", As: "totalSeats"},
			{Func: "MIN", Args: []string{"@" + seqField}, As: "firstSeen"},
		},
		SortBy: "firstSeen",
		Limit:  aggregateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate seats: %w: %w", domain.ErrSourceUnavailable, err)
	}

	groups := make([]election.SeatGroup, 0, len(rows))
	for _, row := range rows {
		n, err := strconv.Atoi(row["totalSeats"])
		if err != nil {
			return nil, fmt.Errorf("parse totalSeats %q: %w", row["totalSeats"], err)
		}
		groups = append(groups, election.SeatGroup{
			PartyName:  row[election.FieldParty],
			StateName:  row[election.FieldState],
			Alliance:   row[election.FieldAlliance],
			TotalSeats: n,
		})
	}
	return groups, nil
}

// DistinctStates returns the sorted distinct state names matching q.
func (r *Repo) DistinctStates(ctx context.Context, q election.Query) ([]string, error) {
	return r.distinctStrings(ctx, q, election.FieldState, func(rec election.Record) string { return rec.StateName })
}

// DistinctPCNames returns the sorted distinct constituency names matching q.
func (r *Repo) DistinctPCNames(ctx context.Context, q election.Query) ([]string, error) {
	return r.distinctStrings(ctx, q, election.FieldPC, func(rec election.Record) string { return rec.PCName })
}

// DistinctYears returns the sorted distinct years.
func (r *Repo) DistinctYears(ctx context.Context) ([]int, error) {
	if !r.store.SupportsAggregate(ctx) {
		records, err := r.Find(ctx, election.Query{})
		if err != nil {
			return nil, err
		}
		return election.DistinctYears(records), nil
	}

	values, err := r.groupValues(ctx, election.Query{}, election.FieldYear)
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, len(values))
	for _, v := range values {
		y, err := election.ParseYear(v)
		if err != nil {
			return nil, err
		}
		if y != 0 {
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

func (r *Repo) distinctStrings(
	ctx context.Context, q election.Query, field string, key func(election.Record) string,
) ([]string, error) {
	if !r.store.SupportsAggregate(ctx) {
		records, err := r.Find(ctx, q)
		if err != nil {
			return nil, err
		}
		return election.DistinctStrings(records, key), nil
	}

	values, err := r.groupValues(ctx, q, field)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *Repo) groupValues(ctx context.Context, q election.Query, field string) ([]string, error) {
	rows, err := r.store.Aggregate(ctx, &db.AggregateQuery{
		IndexName: r.indexName(),
		Filters:   q.Expression(),
		GroupBy:   []string{field},
		Limit:     aggregateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w: %w", field, domain.ErrSourceUnavailable, err)
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[field])
	}
	return values, nil
}

func decodeEntry(entry db.SearchEntry) (int64, election.Record, error) {
	raw := entry.Fields["$"]
	if raw == "" {
		return 0, election.Record{}, fmt.Errorf("empty document")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return 0, election.Record{}, err
	}

	var seq int64
	if n, ok := m[seqField].(json.Number); ok {
		seq, _ = n.Int64()
	}
	rec, err := election.RecordFromMap(m)
	if err != nil {
		return 0, election.Record{}, err
	}
	return seq, rec, nil
}
