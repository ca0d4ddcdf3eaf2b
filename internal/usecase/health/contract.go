package health

import "context"

// DBPinger checks document source availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// AssetChecker checks that the logo asset store is readable.
type AssetChecker interface {
	Check(ctx context.Context) error
}
