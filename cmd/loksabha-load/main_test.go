package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/loksabha/internal/config"
	loksabha "github.com/kailas-cloud/loksabha/pkg/sdk"
)

type mockImporter struct {
	batches [][]loksabha.Record
	failAt  int
}

func (m *mockImporter) Import(_ context.Context, rs []loksabha.Record) (int, error) {
	if m.failAt > 0 && len(m.batches)+1 == m.failAt {
		return 0, errors.New("write failed")
	}
	m.batches = append(m.batches, append([]loksabha.Record(nil), rs...))
	return len(rs), nil
}

const ndjson = `{"year":2019,"PC NAME":"A"}
{"year":2019,"PC NAME":"B"}
{"year":2019,"PC NAME":"C"}
{"year":2019,"PC NAME":"D"}
{"year":2019,"PC NAME":"E"}
`

func TestImportAll_Batches(t *testing.T) {
	r, err := newReader(formatNDJSON, strings.NewReader(ndjson))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dst := &mockImporter{}
	var progress []int

	total, err := importAll(context.Background(), r, dst, 2, func(n int) { progress = append(progress, n) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(dst.batches) != 3 || len(dst.batches[2]) != 1 {
		t.Fatalf("batches = %+v", dst.batches)
	}
	if dst.batches[0][0].PCName != "A" || dst.batches[1][1].PCName != "D" || dst.batches[2][0].PCName != "E" {
		t.Error("records imported out of order")
	}
	if len(progress) != 3 || progress[2] != 5 {
		t.Errorf("progress = %v", progress)
	}
}

func TestImportAll_StopsOnError(t *testing.T) {
	r, _ := newReader(formatNDJSON, strings.NewReader(ndjson))
	dst := &mockImporter{failAt: 2}

	total, err := importAll(context.Background(), r, dst, 2, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
}

func TestImportAll_Cancelled(t *testing.T) {
	r, _ := newReader(formatNDJSON, strings.NewReader(ndjson))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := importAll(ctx, r, &mockImporter{}, 2, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestClientOptions_Drivers(t *testing.T) {
	for _, driver := range []string{config.DriverValkey, config.DriverRedis, config.DriverMongo} {
		cfg := config.Config{Database: config.DatabaseConfig{
			Driver: driver,
			Addrs:  []string{"localhost:6379"},
			URI:    "mongodb://localhost:27017",
		}}
		cfg.ApplyDefaults()
		if got := len(clientOptions(cfg)); got != 5 {
			t.Errorf("%s: %d options, want 5", driver, got)
		}
	}
}
