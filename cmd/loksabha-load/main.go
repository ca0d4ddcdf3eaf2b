// Command loksabha-load imports an election dataset into the configured
// document source.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/loksabha/internal/config"
	logpkg "github.com/kailas-cloud/loksabha/internal/logger"
	"github.com/kailas-cloud/loksabha/internal/version"
	loksabha "github.com/kailas-cloud/loksabha/pkg/sdk"
)

func main() {
	var (
		file       = flag.String("file", "", "dataset path (required)")
		format     = flag.String("format", "", "json, ndjson or csv (default: from extension)")
		batchSize  = flag.Int("batch", 500, "records per import batch")
		configPath = flag.String("config", "", "config file (default: config/<ENV>.yaml)")
		showVer    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println("loksabha-load", version.String())
		return
	}
	if *file == "" || *batchSize <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
		os.Exit(1)
	}

	env := config.GetEnv()
	cfg, err := loadConfig(env, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *file, *format, *batchSize, logger); err != nil {
		logger.Error("Import failed", zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(env, path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(env)
}

func run(ctx context.Context, cfg config.Config, path, format string, batchSize int, logger *zap.Logger) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	if format == "" {
		format = formatFromPath(path)
	}
	reader, err := newReader(format, f)
	if err != nil {
		return err
	}

	client, err := loksabha.New(ctx, clientOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	logger.Info("Importing dataset",
		zap.String("file", path),
		zap.String("format", format),
		zap.String("driver", cfg.Database.Driver),
		zap.Int("batch", batchSize),
	)

	start := time.Now()
	total, err := importAll(ctx, reader, client, batchSize, func(n int) {
		logger.Debug("Batch imported", zap.Int("total", n))
	})
	if err != nil {
		return fmt.Errorf("after %d records: %w", total, err)
	}

	logger.Info("Import completed",
		zap.Int("records", total),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func clientOptions(cfg config.Config) []loksabha.Option {
	opts := []loksabha.Option{
		loksabha.WithKeyPrefix(cfg.Storage.KeyPrefix),
		loksabha.WithPageSize(cfg.Storage.PageSize),
		loksabha.WithLogoDir(cfg.Assets.LogoDir),
		loksabha.WithReadinessTimeout(time.Duration(cfg.Database.ReadinessTimeout) * time.Second),
	}
	switch cfg.Database.Driver {
	case config.DriverRedis:
		opts = append(opts, loksabha.WithRedis(cfg.Database.Addrs[0], cfg.Database.Password))
	case config.DriverMongo:
		opts = append(opts, loksabha.WithMongo(cfg.Database.URI, cfg.Database.Name, cfg.Database.Collection))
	default:
		opts = append(opts, loksabha.WithValkey(cfg.Database.Addrs[0], cfg.Database.Password))
	}
	return opts
}

// batchImporter is the slice of the SDK client the loader needs.
type batchImporter interface {
	Import(ctx context.Context, records []loksabha.Record) (int, error)
}

// importAll reads every record and imports them in order, batchSize at a time.
// progress is called after each batch with the running total.
func importAll(
	ctx context.Context, r recordReader, dst batchImporter, batchSize int, progress func(int),
) (int, error) {
	total := 0
	batch := make([]loksabha.Record, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := dst.Import(ctx, batch)
		total += n
		if err != nil {
			return err
		}
		batch = batch[:0]
		if progress != nil {
			progress(total)
		}
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, err
		}
		batch = append(batch, rec)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	return total, flush()
}
