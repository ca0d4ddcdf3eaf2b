// Package election answers the fixed set of election queries: record
// listings, winner tallies, filter options and party logos.
package election

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/loksabha/internal/domain"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

// Service is stateless; every call re-queries the source.
type Service struct {
	source Source
	logos  LogoStore
	logger *zap.Logger
}

// New creates an election service. logger may be nil.
func New(source Source, logos LogoStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logos: logos, logger: logger}
}

// FetchAll returns every record in source order.
func (s *Service) FetchAll(ctx context.Context) ([]election.Record, error) {
	return s.find(ctx, election.Query{})
}

// FetchFiltered returns records matching the non-empty filters among year,
// pcName and stateName. The winners flag of q is ignored.
func (s *Service) FetchFiltered(ctx context.Context, q election.Query) ([]election.Record, error) {
	q.WinnersOnly = false
	return s.find(ctx, q)
}

// FetchWinners is FetchFiltered restricted to winning records.
func (s *Service) FetchWinners(ctx context.Context, q election.Query) ([]election.Record, error) {
	return s.find(ctx, q.Winners())
}

// FetchWinnerAggregate picks the result shape from the filters:
// a pcName yields the flat winner list, no state yields a party tally
// (or pie slices), a state alone yields per-group state tallies.
// Year or stateName is required.
func (s *Service) FetchWinnerAggregate(
	ctx context.Context, q election.Query, pieChart bool,
) (election.WinnerAggregate, error) {
	if q.Year == 0 && q.StateName == "" {
		return election.WinnerAggregate{}, fmt.Errorf("year or state name: %w", domain.ErrInvalidArgument)
	}

	switch {
	case q.PCName != "":
		winners, err := s.FetchWinners(ctx, q)
		if err != nil {
			return election.WinnerAggregate{}, err
		}
		return election.WinnerAggregate{Shape: election.ShapeWinners, Winners: winners}, nil

	case q.StateName == "":
		groups, err := s.groupWinners(ctx, election.Query{Year: q.Year})
		if err != nil {
			return election.WinnerAggregate{}, err
		}
		if pieChart {
			return election.WinnerAggregate{Shape: election.ShapePieChart, Slices: election.CollapsePie(groups)}, nil
		}
		return election.WinnerAggregate{Shape: election.ShapePartyTally, Tallies: election.CollapseByParty(groups)}, nil

	default:
		groups, err := s.groupWinners(ctx, election.Query{Year: q.Year, StateName: q.StateName})
		if err != nil {
			return election.WinnerAggregate{}, err
		}
		return election.WinnerAggregate{Shape: election.ShapeStateTally, Tallies: election.StateTallies(groups)}, nil
	}
}

// ListConstituencies returns the sorted distinct constituency names of a
// state. An empty state yields an empty list without touching the source.
func (s *Service) ListConstituencies(ctx context.Context, stateName string) ([]string, error) {
	if stateName == "" {
		return []string{}, nil
	}
	names, err := s.source.DistinctPCNames(ctx, election.Query{StateName: stateName})
	if err != nil {
		return nil, fmt.Errorf("distinct pc names: %w", err)
	}
	return nonNil(names), nil
}

// ListFilterOptions returns the sorted distinct years and state names.
func (s *Service) ListFilterOptions(ctx context.Context) (election.FilterOptions, error) {
	years, err := s.source.DistinctYears(ctx)
	if err != nil {
		return election.FilterOptions{}, fmt.Errorf("distinct years: %w", err)
	}
	states, err := s.source.DistinctStates(ctx, election.Query{})
	if err != nil {
		return election.FilterOptions{}, fmt.Errorf("distinct states: %w", err)
	}
	return election.FilterOptions{Years: nonNil(years), StateNames: nonNil(states)}, nil
}

// PartyLogo returns the logo asset for a party abbreviation.
func (s *Service) PartyLogo(ctx context.Context, abbreviation string) (election.Logo, error) {
	logo, err := s.logos.Open(ctx, abbreviation)
	if err != nil {
		return election.Logo{}, fmt.Errorf("party logo: %w", err)
	}
	return logo, nil
}

// LogoMapping returns one party/logo entry per record, duplicates included.
func (s *Service) LogoMapping(ctx context.Context) ([]election.LogoEntry, error) {
	records, err := s.find(ctx, election.Query{})
	if err != nil {
		return nil, err
	}
	entries := make([]election.LogoEntry, 0, len(records))
	for i := range records {
		entries = append(entries, election.LogoEntry{
			PartyName: records[i].PartyName,
			LogoURL:   records[i].LogoURL,
		})
	}
	return entries, nil
}

func (s *Service) find(ctx context.Context, q election.Query) ([]election.Record, error) {
	records, err := s.source.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	return nonNil(records), nil
}

func (s *Service) groupWinners(ctx context.Context, q election.Query) ([]election.SeatGroup, error) {
	groups, err := s.source.GroupSeats(ctx, q.Winners())
	if err != nil {
		return nil, fmt.Errorf("group seats: %w", err)
	}
	s.logger.Debug("Grouped winner seats",
		zap.Int("year", q.Year),
		zap.String("state", q.StateName),
		zap.Int("groups", len(groups)),
	)
	return groups, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
