package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/loksabha/internal/db"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
	"github.com/kailas-cloud/loksabha/internal/domain/filter"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetMultiFn func(ctx context.Context, items []db.JSONSetItem) error
	incrByFn       func(ctx context.Context, key string, val int64) (int64, error)
	createIndexFn  func(ctx context.Context, def *db.IndexDefinition) error
	searchListFn   func(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	aggregateFn    func(ctx context.Context, q *db.AggregateQuery) ([]map[string]string, error)
	aggregate      bool
}

func (m *mockStore) JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error {
	if m.jsonSetMultiFn != nil {
		return m.jsonSetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) IncrBy(ctx context.Context, key string, val int64) (int64, error) {
	if m.incrByFn != nil {
		return m.incrByFn(ctx, key, val)
	}
	return val, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) Aggregate(ctx context.Context, q *db.AggregateQuery) ([]map[string]string, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, q)
	}
	return nil, db.ErrUnsupported
}

func (m *mockStore) SupportsAggregate(_ context.Context) bool {
	return m.aggregate
}

// pagedStore serves stored documents through SearchList like FT.SEARCH:
// __seq window conditions are applied, at most Limit entries come back in
// the given order, and any non-zero Offset is rejected the way Redis rejects
// offsets past MAXSEARCHRESULTS. IncrBy by 0 reads the highest sequence.
func pagedStore(docs []map[string]any) *mockStore {
	var maxSeq int64
	for _, d := range docs {
		if seq, _ := d[seqField].(int64); seq > maxSeq {
			maxSeq = seq
		}
	}
	return &mockStore{
		incrByFn: func(_ context.Context, _ string, val int64) (int64, error) {
			maxSeq += val
			return maxSeq, nil
		},
		searchListFn: func(_ context.Context, q *db.ListQuery) (*db.SearchResult, error) {
			if q.Offset != 0 {
				return nil, fmt.Errorf("OFFSET exceeds maximum of %d", q.Offset)
			}
			res := &db.SearchResult{}
			for _, d := range docs {
				if !inWindow(q.Filters, d[seqField].(int64)) {
					continue
				}
				res.Total++
				if len(res.Entries) == q.Limit {
					continue
				}
				data, err := json.Marshal(d)
				if err != nil {
					return nil, err
				}
				res.Entries = append(res.Entries, db.SearchEntry{
					Key:    fmt.Sprintf("loksabha:record:%d", d[seqField]),
					Fields: map[string]string{"$": string(data)},
				})
			}
			return res, nil
		},
	}
}

func inWindow(expr filter.Expression, seq int64) bool {
	for _, c := range expr.Must() {
		if c.Key() != seqField || !c.IsRange() {
			continue
		}
		v := float64(seq)
		if r := c.Range(); (r.GTE() != nil && v < *r.GTE()) || (r.LTE() != nil && v > *r.LTE()) {
			return false
		}
	}
	return true
}

func storedDoc(seq int64, r election.Record) map[string]any {
	doc := r.Document()
	doc[seqField] = seq
	return doc
}
