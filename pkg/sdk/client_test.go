package loksabha

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	healthuc "github.com/kailas-cloud/loksabha/internal/usecase/health"
)

func TestNew_NoBackend(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no backend provided")
	}
}

func TestNew_MissingAddress(t *testing.T) {
	if _, err := New(context.Background(), WithValkey("", "")); err == nil {
		t.Fatal("expected error for empty address")
	}
	if _, err := New(context.Background(), WithMongo("", "", "")); err == nil {
		t.Fatal("expected error for empty mongo uri")
	}
}

func TestOpenSource_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "unknown", addrs: []string{"localhost:1234"}}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for unknown driver")
	}
	if _, err := openSource(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}
	reg := prometheus.NewRegistry()
	logger := slog.Default()

	opts := []Option{
		WithRedis("redis:6379", "secret"),
		WithKeyPrefix("ls:"),
		WithPageSize(250),
		WithLogoDir("/srv/logo"),
		WithReadinessTimeout(3 * time.Second),
		WithLogger(logger),
		WithPrometheus(reg),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver != driverRedis || cfg.addrs[0] != "redis:6379" || cfg.password != "secret" {
		t.Errorf("redis options = %+v", cfg)
	}
	if cfg.keyPrefix != "ls:" || cfg.pageSize != 250 || cfg.logoDir != "/srv/logo" {
		t.Errorf("storage options = %+v", cfg)
	}
	if cfg.readinessTimeout != 3*time.Second {
		t.Errorf("readiness = %v", cfg.readinessTimeout)
	}
	if cfg.logger != logger || cfg.metricsReg != reg {
		t.Error("observability options not applied")
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithMongo(t *testing.T) {
	cfg := &clientConfig{}
	WithMongo("mongodb://db:27017", "", "results").apply(cfg)

	if cfg.driver != driverMongo || cfg.mongoURI != "mongodb://db:27017" || cfg.mongoCollection != "results" {
		t.Errorf("mongo options = %+v", cfg)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing(t *testing.T) {
	obs, err := newObserver(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := &Client{pinger: &mockPinger{}, obs: obs}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.pinger = &mockPinger{err: ErrSourceUnavailable}
	if err := c.Ping(context.Background()); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	c := &Client{healthSvc: &mockHealthUC{report: healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK, "assets": healthuc.CheckError},
	}}}

	h := c.Health(context.Background())
	if h.Status != "degraded" || h.Checks["assets"] != "error" || h.Checks["database"] != "ok" {
		t.Errorf("health = %+v", h)
	}
}

func TestClose_NilSafe(t *testing.T) {
	(&Client{}).Close()

	closed := false
	(&Client{closeFn: func() { closed = true }}).Close()
	if !closed {
		t.Error("closeFn not called")
	}
}

func TestObserver_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	obs.observeRows("records", time.Now(), 3, nil)
	obs.observe("ping", time.Now(), errors.New("down"))

	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("records", "ok")); got != 1 {
		t.Errorf("records ok = %f", got)
	}
	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("ping", "error")); got != 1 {
		t.Errorf("ping error = %f", got)
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.metrics.operations != second.metrics.operations {
		t.Error("expected second observer to reuse registered counter")
	}
}

func TestObserver_Nil(t *testing.T) {
	var obs *observer
	obs.observe("noop", time.Now(), nil)
}
