package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironhq/leaguesync/internal/normalize"
	"github.com/gridironhq/leaguesync/internal/platform/logging"
)

// SnapshotFetcher pulls one season's raw feed documents.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, year int, seasonType string, rankingWeeks []int) (normalize.Snapshot, error)
}

type SyncInput struct {
	Year         int
	SeasonType   string
	RankingWeeks []int
}

type SyncResult struct {
	Counts   map[string]int
	Duration time.Duration
}

// LeagueSyncService drives one full refresh: fetch, normalize, persist.
type LeagueSyncService struct {
	fetcher   SnapshotFetcher
	ingestion *IngestionService
	logger    *logging.Logger
}

func NewLeagueSyncService(fetcher SnapshotFetcher, ingestion *IngestionService, logger *logging.Logger) *LeagueSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueSyncService{fetcher: fetcher, ingestion: ingestion, logger: logger}
}

func (s *LeagueSyncService) Sync(ctx context.Context, input SyncInput) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueSyncService.Sync")
	defer span.End()

	if input.Year < 1900 {
		return SyncResult{}, fmt.Errorf("%w: year %d is not a plausible season year", ErrInvalidInput, input.Year)
	}
	if input.SeasonType == "" {
		return SyncResult{}, fmt.Errorf("%w: season type is required", ErrInvalidInput)
	}

	start := time.Now()
	s.logger.InfoContext(ctx, "league sync started", "year", input.Year, "season_type", input.SeasonType, "ranking_weeks", len(input.RankingWeeks))

	snap, err := s.fetcher.FetchSnapshot(ctx, input.Year, input.SeasonType, input.RankingWeeks)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch snapshot: %w", err)
	}

	tables, err := normalize.NewPipeline(s.logger).Run(snap)
	if err != nil {
		return SyncResult{}, fmt.Errorf("normalize snapshot: %w", err)
	}

	if err := s.ingestion.PersistTables(ctx, tables); err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{
		Counts:   tables.Counts(),
		Duration: time.Since(start),
	}
	s.logger.InfoContext(ctx, "league sync finished", "duration", result.Duration, "counts", result.Counts)
	return result, nil
}
