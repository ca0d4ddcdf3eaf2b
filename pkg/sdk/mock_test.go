package loksabha

import (
	"context"

	"github.com/kailas-cloud/loksabha/internal/domain/election"
	healthuc "github.com/kailas-cloud/loksabha/internal/usecase/health"
)

// --- electionUseCase mock ---

type mockElectionUC struct {
	fetchAllFn      func(ctx context.Context) ([]election.Record, error)
	fetchFilteredFn func(ctx context.Context, q election.Query) ([]election.Record, error)
	fetchWinnersFn  func(ctx context.Context, q election.Query) ([]election.Record, error)
	aggregateFn     func(ctx context.Context, q election.Query, pie bool) (election.WinnerAggregate, error)
	constituencyFn  func(ctx context.Context, state string) ([]string, error)
	filterOptionsFn func(ctx context.Context) (election.FilterOptions, error)
	partyLogoFn     func(ctx context.Context, abbr string) (election.Logo, error)
	logoMappingFn   func(ctx context.Context) ([]election.LogoEntry, error)
}

func (m *mockElectionUC) FetchAll(ctx context.Context) ([]election.Record, error) {
	return m.fetchAllFn(ctx)
}

func (m *mockElectionUC) FetchFiltered(ctx context.Context, q election.Query) ([]election.Record, error) {
	return m.fetchFilteredFn(ctx, q)
}

func (m *mockElectionUC) FetchWinners(ctx context.Context, q election.Query) ([]election.Record, error) {
	return m.fetchWinnersFn(ctx, q)
}

func (m *mockElectionUC) FetchWinnerAggregate(
	ctx context.Context, q election.Query, pie bool,
) (election.WinnerAggregate, error) {
	return m.aggregateFn(ctx, q, pie)
}

func (m *mockElectionUC) ListConstituencies(ctx context.Context, state string) ([]string, error) {
	return m.constituencyFn(ctx, state)
}

func (m *mockElectionUC) ListFilterOptions(ctx context.Context) (election.FilterOptions, error) {
	return m.filterOptionsFn(ctx)
}

func (m *mockElectionUC) PartyLogo(ctx context.Context, abbr string) (election.Logo, error) {
	return m.partyLogoFn(ctx, abbr)
}

func (m *mockElectionUC) LogoMapping(ctx context.Context) ([]election.LogoEntry, error) {
	return m.logoMappingFn(ctx)
}

// --- importer mock ---

type mockImporter struct {
	importFn func(ctx context.Context, records []election.Record) (int, error)
}

func (m *mockImporter) Import(ctx context.Context, records []election.Record) (int, error) {
	return m.importFn(ctx, records)
}

// --- pinger / health mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }
