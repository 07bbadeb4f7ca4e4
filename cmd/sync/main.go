package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/gridironhq/leaguesync/internal/app"
	"github.com/gridironhq/leaguesync/internal/config"
	"github.com/gridironhq/leaguesync/internal/platform/logging"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

func main() {
	year := flag.Int("year", 0, "season year to sync (defaults to SYNC_YEAR)")
	seasonType := flag.String("season-type", "", "season type code, e.g. REG (defaults to SYNC_SEASON_TYPE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if *year != 0 {
		cfg.SyncYear = *year
	}
	if *seasonType != "" {
		cfg.SyncSeasonType = *seasonType
	}

	fetcher, err := app.NewSnapshotFetcher(cfg, logger)
	if err != nil {
		logger.Error("build feed client", "error", err)
		os.Exit(1)
	}

	services, err := app.BuildServices(cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer func() { _ = services.Close() }()

	syncService := usecase.NewLeagueSyncService(fetcher, services.Ingestion, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := syncService.Sync(ctx, usecase.SyncInput{
		Year:         cfg.SyncYear,
		SeasonType:   cfg.SyncSeasonType,
		RankingWeeks: cfg.SyncRankingWeeks,
	})
	if err != nil {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}

	args := make([]any, 0, 2*len(result.Counts)+2)
	for _, table := range sortedCountKeys(result.Counts) {
		args = append(args, table, result.Counts[table])
	}
	args = append(args, "duration", result.Duration.String())
	logger.Info("sync finished", args...)
}

func sortedCountKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
