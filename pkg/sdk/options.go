package loksabha

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// Backend drivers.
const (
	driverValkey = "valkey"
	driverRedis  = "redis"
	driverMongo  = "mongo"
)

type clientConfig struct {
	driver   string
	addrs    []string
	password string

	mongoURI        string
	mongoDatabase   string
	mongoCollection string

	keyPrefix        string
	pageSize         int
	logoDir          string
	readinessTimeout time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance
// with the valkey-search and valkey-json modules.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance
// with RediSearch and RedisJSON.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMongo configures the client to read a MongoDB collection.
// Empty database or collection names default to "Lokshaba".
func WithMongo(uri, database, collection string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMongo
		c.mongoURI = uri
		c.mongoDatabase = database
		c.mongoCollection = collection
	})
}

// WithKeyPrefix sets the key namespace for Valkey/Redis documents and index.
// Default: "loksabha:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithPageSize sets how many documents each Valkey/Redis search page fetches.
func WithPageSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = n
	})
}

// WithLogoDir sets the directory holding <abbreviation>.png party logos.
// Default: static/logo.
func WithLogoDir(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.logoDir = dir
	})
}

// WithReadinessTimeout bounds the initial connectivity check in New.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
