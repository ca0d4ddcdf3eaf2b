package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/loksabha/internal/db"
)

// SupportsAggregate reports whether FT.AGGREGATE is available: Redis only.
func (s *Store) SupportsAggregate(_ context.Context) bool {
	return s.flavor == FlavorRedis
}

// Aggregate runs FT.AGGREGATE with a single GROUPBY stage and returns one
// property map per group row.
func (s *Store) Aggregate(ctx context.Context, q *db.AggregateQuery) ([]map[string]string, error) {
	if s.flavor != FlavorRedis {
		return nil, db.ErrUnsupported
	}
	args, err := buildAggregateArgs(q)
	if err != nil {
		return nil, err
	}

	cmd := s.b().Arbitrary("FT.AGGREGATE").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}

	return parseAggregateResult(raw), nil
}

func buildAggregateArgs(q *db.AggregateQuery) ([]string, error) {
	if q == nil || q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if len(q.GroupBy) == 0 {
		return nil, fmt.Errorf("at least one group-by field is required")
	}

	query := buildFilter(q.Filters)
	if query == "" {
		query = "*"
	}
	args := []string{q.IndexName, query}

	if len(q.Load) > 0 {
		args = append(args, "LOAD", strconv.Itoa(len(q.Load)))
		for _, f := range q.Load {
			args = append(args, "@"+f)
		}
	}

	args = append(args, "GROUPBY", strconv.Itoa(len(q.GroupBy)))
	for _, f := range q.GroupBy {
		args = append(args, "@"+f)
	}

	for _, r := range q.Reducers {
		args = append(args, "REDUCE", r.Func, strconv.Itoa(len(r.Args)))
		args = append(args, r.Args...)
		if r.As != "" {
			args = append(args, "AS", r.As)
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 10000
	}
	if q.SortBy != "" {
		args = append(args, "SORTBY", "2", "@"+q.SortBy, "ASC", "MAX", strconv.Itoa(limit))
	}
	args = append(args, "LIMIT", "0", strconv.Itoa(limit), "DIALECT", "2")

	return args, nil
}

// parseAggregateResult decodes [total, [k, v, ...], [k, v, ...], ...].
func parseAggregateResult(raw []rueidis.RedisMessage) []map[string]string {
	if len(raw) <= 1 {
		return []map[string]string{}
	}
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, msg := range raw[1:] {
		pairs, err := msg.ToArray()
		if err != nil {
			continue
		}
		rows = append(rows, parseFieldPairs(pairs))
	}
	return rows
}
