package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/loksabha/internal/config"
	mongodb "github.com/kailas-cloud/loksabha/internal/db/mongo"
	dbRedis "github.com/kailas-cloud/loksabha/internal/db/redis"
	"github.com/kailas-cloud/loksabha/internal/repository/mongorecord"
	"github.com/kailas-cloud/loksabha/internal/repository/record"
	electionuc "github.com/kailas-cloud/loksabha/internal/usecase/election"
)

// backend bundles a document source with its connection lifecycle.
type backend struct {
	source    electionuc.Source
	pingFn    func(ctx context.Context) error
	waitFn    func(ctx context.Context, timeout time.Duration) error
	prepareFn func(ctx context.Context) error
	closeFn   func()
}

func (b *backend) Ping(ctx context.Context) error { return b.pingFn(ctx) }

func (b *backend) waitForReady(ctx context.Context, timeout time.Duration) error {
	return b.waitFn(ctx, timeout)
}

func (b *backend) prepare(ctx context.Context) error {
	if b.prepareFn == nil {
		return nil
	}
	return b.prepareFn(ctx)
}

func (b *backend) close() { b.closeFn() }

// openSource creates the document source selected by database.driver.
func openSource(ctx context.Context, dbCfg config.DatabaseConfig, storage config.StorageConfig) (*backend, error) {
	switch dbCfg.Driver {
	case config.DriverValkey, config.DriverRedis:
		flavor := dbRedis.FlavorValkey
		if dbCfg.Driver == config.DriverRedis {
			flavor = dbRedis.FlavorRedis
		}
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    dbCfg.Addrs,
			Username: dbCfg.Username,
			Password: dbCfg.Password,
			Flavor:   flavor,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", dbCfg.Driver, err)
		}
		repo := record.New(store, record.Config{
			KeyPrefix: storage.KeyPrefix,
			PageSize:  storage.PageSize,
		})
		return &backend{
			source:    repo,
			pingFn:    store.Ping,
			waitFn:    store.WaitForReady,
			prepareFn: repo.EnsureIndex,
			closeFn:   store.Close,
		}, nil

	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, mongodb.Config{
			URI:        dbCfg.URI,
			Database:   dbCfg.Name,
			Collection: dbCfg.Collection,
		})
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return &backend{
			source: mongorecord.New(client.Collection()),
			pingFn: client.Ping,
			waitFn: client.WaitForReady,
			closeFn: func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Close(closeCtx)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", dbCfg.Driver)
	}
}
