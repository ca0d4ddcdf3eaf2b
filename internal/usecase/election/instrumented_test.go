package election

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/loksabha/internal/domain"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
	"github.com/kailas-cloud/loksabha/internal/metrics"
)

func TestInstrumentedSource_Success(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := NewInstrumentedSource(&memorySource{records: dataset()}, "valkey", zap.New(core))

	before := testutil.ToFloat64(metrics.SourceQueriesTotal.WithLabelValues(opFind, "ok"))

	got, err := src.Find(context.Background(), election.Query{Year: 2014})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records", len(got))
	}

	after := testutil.ToFloat64(metrics.SourceQueriesTotal.WithLabelValues(opFind, "ok"))
	if after-before != 1 {
		t.Errorf("source_queries_total delta = %f, want 1", after-before)
	}

	entries := logs.FilterMessage("Source query completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 debug log, got %d", len(entries))
	}
	if entries[0].ContextMap()["rows"] != int64(2) {
		t.Errorf("rows field = %v", entries[0].ContextMap()["rows"])
	}
}

func TestInstrumentedSource_Error(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := NewInstrumentedSource(&memorySource{err: domain.ErrSourceUnavailable}, "mongo", zap.New(core))

	before := testutil.ToFloat64(metrics.SourceQueriesTotal.WithLabelValues(opDistinctYears, "error"))

	_, err := src.DistinctYears(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}

	after := testutil.ToFloat64(metrics.SourceQueriesTotal.WithLabelValues(opDistinctYears, "error"))
	if after-before != 1 {
		t.Errorf("error counter delta = %f, want 1", after-before)
	}
	if logs.FilterMessage("Source query failed").Len() != 1 {
		t.Error("expected error log")
	}
}

func TestInstrumentedSource_ServesEngine(t *testing.T) {
	src := NewInstrumentedSource(&memorySource{records: dataset()}, "redis", nil)
	svc := New(src, &mockLogos{}, nil)

	agg, err := svc.FetchWinnerAggregate(context.Background(), election.Query{Year: 2019}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.Len() != 2 {
		t.Errorf("slices = %+v", agg.Slices)
	}
}
