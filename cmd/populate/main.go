package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/football-data-api/internal/app"
	"github.com/riskibarqy/football-data-api/internal/config"
	"github.com/riskibarqy/football-data-api/internal/observability"
	"github.com/riskibarqy/football-data-api/internal/platform/logging"
)

// populate scrapes every configured league season and upserts it into
// Postgres. Re-running it is safe.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName+"-populate", "env", cfg.AppEnv)
	logging.SetDefault(logger)

	code := run(cfg, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(cfg config.Config, logger *logging.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init tracing failed", "error", err)
		return 1
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = shutdownTracing(tctx)
	}()

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		logger.Error("open database failed", "error", err)
		return 1
	}
	defer func() { _ = db.Close() }()

	populator, err := app.NewPopulator(cfg, db, logger)
	if err != nil {
		logger.Error("build populator failed", "error", err)
		return 1
	}

	logger.Info("population started",
		"leagues", cfg.Populate.Leagues,
		"season_years", cfg.Populate.SeasonYears,
	)
	summary, err := populator.Run(ctx)
	if err != nil {
		logger.Error("population aborted", "error", err, "seasons", summary.Seasons, "matches", summary.Matches)
		return 1
	}
	if summary.FailedSeasons > 0 && summary.Matches == 0 {
		logger.Error("population stored nothing", "failed_seasons", summary.FailedSeasons)
		return 1
	}
	return 0
}
