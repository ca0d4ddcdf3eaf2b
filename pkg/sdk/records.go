package loksabha

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

// Records returns every record in source order.
func (c *Client) Records(ctx context.Context) (_ []Record, err error) {
	start := time.Now()
	var rs []election.Record
	defer func() { c.obs.observeRows("records", start, len(rs), err) }()

	rs, err = c.elections.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	return recordsFromDomain(rs), nil
}

// Filter returns the records matching f.
func (c *Client) Filter(ctx context.Context, f Filter) (_ []Record, err error) {
	start := time.Now()
	var rs []election.Record
	defer func() { c.obs.observeRows("filter", start, len(rs), err) }()

	rs, err = c.elections.FetchFiltered(ctx, f.query())
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return recordsFromDomain(rs), nil
}

// Winners returns the winning records matching f.
func (c *Client) Winners(ctx context.Context, f Filter) (_ []Record, err error) {
	start := time.Now()
	var rs []election.Record
	defer func() { c.obs.observeRows("winners", start, len(rs), err) }()

	rs, err = c.elections.FetchWinners(ctx, f.query())
	if err != nil {
		return nil, fmt.Errorf("winners: %w", err)
	}
	return recordsFromDomain(rs), nil
}

// WinnerAggregate tallies winners. Year or StateName is required
// (ErrInvalidArgument otherwise). A PCName yields the flat winner list;
// a state yields one tally per party, state and alliance; a year alone
// yields a per-party tally, or pie slices when pieChart is set.
func (c *Client) WinnerAggregate(ctx context.Context, f Filter, pieChart bool) (_ WinnerAggregate, err error) {
	start := time.Now()
	var agg election.WinnerAggregate
	defer func() { c.obs.observeRows("winner_aggregate", start, agg.Len(), err) }()

	agg, err = c.elections.FetchWinnerAggregate(ctx, f.query(), pieChart)
	if err != nil {
		return WinnerAggregate{}, fmt.Errorf("winner aggregate: %w", err)
	}
	return aggregateFromDomain(agg), nil
}

// Constituencies returns the sorted constituency names of a state.
func (c *Client) Constituencies(ctx context.Context, stateName string) (_ []string, err error) {
	start := time.Now()
	var names []string
	defer func() { c.obs.observeRows("constituencies", start, len(names), err) }()

	names, err = c.elections.ListConstituencies(ctx, stateName)
	if err != nil {
		return nil, fmt.Errorf("constituencies: %w", err)
	}
	return names, nil
}

// FilterOptions returns the distinct years and state names.
func (c *Client) FilterOptions(ctx context.Context) (_ FilterOptions, err error) {
	start := time.Now()
	defer func() { c.obs.observe("filter_options", start, err) }()

	opts, err := c.elections.ListFilterOptions(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("filter options: %w", err)
	}
	return FilterOptions{Years: opts.Years, StateNames: opts.StateNames}, nil
}

// PartyLogo returns the PNG logo of a party abbreviation, or ErrNotFound.
func (c *Client) PartyLogo(ctx context.Context, abbreviation string) (_ Logo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("party_logo", start, err) }()

	l, err := c.elections.PartyLogo(ctx, abbreviation)
	if err != nil {
		return Logo{}, err
	}
	return Logo{Abbreviation: l.Abbreviation, ContentType: election.LogoContentType, Data: l.Data}, nil
}

// LogoMapping returns one party/logo entry per record.
func (c *Client) LogoMapping(ctx context.Context) (_ []LogoEntry, err error) {
	start := time.Now()
	var entries []election.LogoEntry
	defer func() { c.obs.observeRows("logo_mapping", start, len(entries), err) }()

	entries, err = c.elections.LogoMapping(ctx)
	if err != nil {
		return nil, fmt.Errorf("logo mapping: %w", err)
	}
	out := make([]LogoEntry, len(entries))
	for i, e := range entries {
		out[i] = LogoEntry{PartyName: e.PartyName, LogoURL: e.LogoURL}
	}
	return out, nil
}

// Import appends records to the backend and returns how many were written.
// Records keep their order; callers batch large datasets.
func (c *Client) Import(ctx context.Context, records []Record) (n int, err error) {
	start := time.Now()
	defer func() { c.obs.observeRows("import", start, n, err) }()

	if len(records) == 0 {
		return 0, nil
	}
	rs := make([]election.Record, len(records))
	for i := range records {
		rs[i] = recordToDomain(&records[i])
	}
	n, err = c.importer.Import(ctx, rs)
	if err != nil {
		return n, fmt.Errorf("import: %w", err)
	}
	return n, nil
}
