package election

import (
	"context"

	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

// Source reads election records. Find returns records in source iteration
// order; GroupSeats returns groups in first-seen order.
type Source interface {
	Find(ctx context.Context, q election.Query) ([]election.Record, error)
	GroupSeats(ctx context.Context, q election.Query) ([]election.SeatGroup, error)
	DistinctStates(ctx context.Context, q election.Query) ([]string, error)
	DistinctPCNames(ctx context.Context, q election.Query) ([]string, error)
	DistinctYears(ctx context.Context) ([]int, error)
}

// LogoStore resolves party logo assets. Missing assets yield domain.ErrNotFound.
type LogoStore interface {
	Open(ctx context.Context, abbreviation string) (election.Logo, error)
}
