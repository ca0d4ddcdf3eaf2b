package db

import "github.com/kailas-cloud/loksabha/internal/domain/filter"

// ListQuery is the input for a filtered, sorted, paged FT.SEARCH.
type ListQuery struct {
	IndexName    string
	Filters      filter.Expression
	SortBy       string
	Descending   bool
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}

// Reducer is a single REDUCE clause of an FT.AGGREGATE GROUPBY.
type Reducer struct {
	Func string   // COUNT, MIN, MAX, SUM, ...
	Args []string // e.g. "@__seq"
	As   string
}

// AggregateQuery is the input for FT.AGGREGATE with one GROUPBY stage.
type AggregateQuery struct {
	IndexName string
	Filters   filter.Expression
	Load      []string // fields to LOAD before grouping
	GroupBy   []string // field names without the '@' prefix
	Reducers  []Reducer
	SortBy    string // property without '@'; ascending
	Limit     int
}
