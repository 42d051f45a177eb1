package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/fieldguard/internal/audit"
	"github.com/gabapcia/fieldguard/internal/config"
	"github.com/gabapcia/fieldguard/internal/handlers/cli"
	"github.com/gabapcia/fieldguard/internal/infra/storage/redis"
	"github.com/gabapcia/fieldguard/internal/manifest"
	"github.com/gabapcia/fieldguard/internal/pkg/logger"
	"github.com/gabapcia/fieldguard/internal/pkg/resilience/retry"
	"github.com/gabapcia/fieldguard/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/fieldguard/internal/pkg/transport/http"
)

const shutdownTimeout = 5 * time.Second

func run(ctx context.Context, cfg config.Config) error {
	shutdown := telemetry.ShutdownFunc(telemetry.NopShutdown)
	if cfg.TelemetryEnabled {
		var err error
		if shutdown, err = telemetry.Init(ctx, cfg.ServiceName); err != nil {
			return err
		}
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "failed to shut down telemetry", "error", err)
		}
	}()

	loader := manifest.NewLoader(httptransport.NewClient(
		httptransport.WithTimeout(cfg.HTTP.Timeout),
		httptransport.WithRetryMax(cfg.HTTP.RetryMax),
	))

	opts := []audit.Option{
		audit.WithWorkers(cfg.Workers),
		audit.WithRetry(retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(200*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
			}),
		)),
	}

	if cfg.Redis.Enabled() {
		store, err := redis.NewClient(ctx,
			cfg.Redis.Addr,
			cfg.Redis.Username,
			cfg.Redis.Password,
			cfg.Redis.DB,
			redis.WithReportTTL(cfg.Redis.ReportTTL),
		)
		if err != nil {
			return err
		}
		defer store.Close()

		opts = append(opts, audit.WithReportStorage(store))
	}

	return cli.Run(ctx, audit.New(loader, opts...))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		// The logger level comes from the config, so it cannot be used yet.
		os.Stderr.WriteString("fieldguard: invalid configuration: " + err.Error() + "\n")
		os.Exit(2)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		os.Stderr.WriteString("fieldguard: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer logger.Sync()

	if err := run(ctx, cfg); err != nil {
		if !errors.Is(err, cli.ErrViolationsFound) {
			logger.Error(ctx, "fieldguard failed", "error", err)
		}

		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
