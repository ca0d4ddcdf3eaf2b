package loksabha

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	mongodb "github.com/kailas-cloud/loksabha/internal/db/mongo"
	dbRedis "github.com/kailas-cloud/loksabha/internal/db/redis"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
	"github.com/kailas-cloud/loksabha/internal/repository/logo"
	"github.com/kailas-cloud/loksabha/internal/repository/mongorecord"
	"github.com/kailas-cloud/loksabha/internal/repository/record"
	electionuc "github.com/kailas-cloud/loksabha/internal/usecase/election"
	healthuc "github.com/kailas-cloud/loksabha/internal/usecase/health"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultMongoName        = "Lokshaba"
)

// Internal interfaces, replaced in tests.
type electionUseCase interface {
	FetchAll(ctx context.Context) ([]election.Record, error)
	FetchFiltered(ctx context.Context, q election.Query) ([]election.Record, error)
	FetchWinners(ctx context.Context, q election.Query) ([]election.Record, error)
	FetchWinnerAggregate(ctx context.Context, q election.Query, pieChart bool) (election.WinnerAggregate, error)
	ListConstituencies(ctx context.Context, stateName string) ([]string, error)
	ListFilterOptions(ctx context.Context) (election.FilterOptions, error)
	PartyLogo(ctx context.Context, abbreviation string) (election.Logo, error)
	LogoMapping(ctx context.Context) ([]election.LogoEntry, error)
}

type importer interface {
	Import(ctx context.Context, records []election.Record) (int, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Client is the loksabha SDK entry point.
type Client struct {
	elections electionUseCase
	importer  importer
	pinger    pinger
	healthSvc healthUseCase
	closeFn   func()
	obs       *observer
}

// source is an opened backend before wiring.
type source struct {
	repo     electionuc.Source
	importer importer
	pinger   pinger
	wait     func(ctx context.Context, timeout time.Duration) error
	prepare  func(ctx context.Context) error
	close    func()
}

// New creates a Client and connects to the configured backend.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
		logoDir:          filepath.Join("static", "logo"),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	src, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := src.wait(ctx, cfg.readinessTimeout); err != nil {
		src.close()
		return nil, fmt.Errorf("loksabha: database not ready: %w", err)
	}
	if src.prepare != nil {
		if err := src.prepare(ctx); err != nil {
			src.close()
			return nil, fmt.Errorf("loksabha: prepare index: %w", err)
		}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		src.close()
		return nil, err
	}
	return wireClient(src, cfg, obs), nil
}

func (c *clientConfig) validate() error {
	switch c.driver {
	case "":
		return errors.New("loksabha: backend required (use WithValkey, WithRedis or WithMongo)")
	case driverValkey, driverRedis:
		if len(c.addrs) == 0 || c.addrs[0] == "" {
			return errors.New("loksabha: database address required")
		}
	case driverMongo:
		if c.mongoURI == "" {
			return errors.New("loksabha: mongo uri required")
		}
	default:
		return fmt.Errorf("loksabha: unknown driver %q", c.driver)
	}
	return nil
}

func openSource(ctx context.Context, cfg *clientConfig) (*source, error) {
	switch cfg.driver {
	case driverValkey, driverRedis:
		flavor := dbRedis.FlavorValkey
		if cfg.driver == driverRedis {
			flavor = dbRedis.FlavorRedis
		}
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
			Flavor:   flavor,
		})
		if err != nil {
			return nil, fmt.Errorf("loksabha: create %s store: %w", cfg.driver, err)
		}
		repo := record.New(store, record.Config{KeyPrefix: cfg.keyPrefix, PageSize: cfg.pageSize})
		return &source{
			repo:     repo,
			importer: repo,
			pinger:   store,
			wait:     store.WaitForReady,
			prepare:  repo.EnsureIndex,
			close:    store.Close,
		}, nil

	case driverMongo:
		name, coll := cfg.mongoDatabase, cfg.mongoCollection
		if name == "" {
			name = defaultMongoName
		}
		if coll == "" {
			coll = defaultMongoName
		}
		client, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.mongoURI, Database: name, Collection: coll})
		if err != nil {
			return nil, fmt.Errorf("loksabha: connect mongo: %w", err)
		}
		repo := mongorecord.New(client.Collection())
		return &source{
			repo:     repo,
			importer: repo,
			pinger:   client,
			wait:     client.WaitForReady,
			close: func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Close(closeCtx)
			},
		}, nil

	default:
		return nil, fmt.Errorf("loksabha: unknown driver %q", cfg.driver)
	}
}

func wireClient(src *source, cfg *clientConfig, obs *observer) *Client {
	logos := logo.NewDir(cfg.logoDir)
	return &Client{
		elections: electionuc.New(src.repo, logos, nil),
		importer:  src.importer,
		pinger:    src.pinger,
		healthSvc: healthuc.New(src.pinger, logos),
		closeFn:   src.close,
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
