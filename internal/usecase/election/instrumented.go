package election

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/loksabha/internal/domain/election"
	"github.com/kailas-cloud/loksabha/internal/metrics"
)

// Source operation labels.
const (
	opFind            = "find"
	opGroupSeats      = "group_seats"
	opDistinctStates  = "distinct_states"
	opDistinctPCNames = "distinct_pc_names"
	opDistinctYears   = "distinct_years"
)

// InstrumentedSource wraps a Source with query metrics and debug logging.
type InstrumentedSource struct {
	inner   Source
	backend string
	logger  *zap.Logger
}

// NewInstrumentedSource wraps inner. backend labels log lines.
func NewInstrumentedSource(inner Source, backend string, logger *zap.Logger) *InstrumentedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedSource{inner: inner, backend: backend, logger: logger}
}

// Find delegates to the inner source.
func (s *InstrumentedSource) Find(ctx context.Context, q election.Query) ([]election.Record, error) {
	start := time.Now()
	records, err := s.inner.Find(ctx, q)
	s.observe(opFind, q, start, len(records), err)
	return records, err
}

// GroupSeats delegates to the inner source.
func (s *InstrumentedSource) GroupSeats(ctx context.Context, q election.Query) ([]election.SeatGroup, error) {
	start := time.Now()
	groups, err := s.inner.GroupSeats(ctx, q)
	s.observe(opGroupSeats, q, start, len(groups), err)
	return groups, err
}

// DistinctStates delegates to the inner source.
func (s *InstrumentedSource) DistinctStates(ctx context.Context, q election.Query) ([]string, error) {
	start := time.Now()
	states, err := s.inner.DistinctStates(ctx, q)
	s.observe(opDistinctStates, q, start, len(states), err)
	return states, err
}

// DistinctPCNames delegates to the inner source.
func (s *InstrumentedSource) DistinctPCNames(ctx context.Context, q election.Query) ([]string, error) {
	start := time.Now()
	names, err := s.inner.DistinctPCNames(ctx, q)
	s.observe(opDistinctPCNames, q, start, len(names), err)
	return names, err
}

// DistinctYears delegates to the inner source.
func (s *InstrumentedSource) DistinctYears(ctx context.Context) ([]int, error) {
	start := time.Now()
	years, err := s.inner.DistinctYears(ctx)
	s.observe(opDistinctYears, election.Query{}, start, len(years), err)
	return years, err
}

func (s *InstrumentedSource) observe(op string, q election.Query, start time.Time, rows int, err error) {
	duration := time.Since(start)
	metrics.SourceQueryDuration.WithLabelValues(op).Observe(duration.Seconds())

	if err != nil {
		metrics.SourceQueriesTotal.WithLabelValues(op, "error").Inc()
		s.logger.Error("Source query failed",
			zap.String("backend", s.backend),
			zap.String("op", op),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}

	metrics.SourceQueriesTotal.WithLabelValues(op, "ok").Inc()
	metrics.SourceRowsReturned.WithLabelValues(op).Observe(float64(rows))
	s.logger.Debug("Source query completed",
		zap.String("backend", s.backend),
		zap.String("op", op),
		zap.Int("year", q.Year),
		zap.String("state", q.StateName),
		zap.String("pc", q.PCName),
		zap.Bool("winners", q.WinnersOnly),
		zap.Duration("duration", duration),
		zap.Int("rows", rows),
	)
}
