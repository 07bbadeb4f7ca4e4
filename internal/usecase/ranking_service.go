package usecase

import (
	"context"
	"fmt"

	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/schedule"
)

type RankingService struct {
	rankings ranking.Repository
}

func NewRankingService(rankings ranking.Repository) *RankingService {
	return &RankingService{rankings: rankings}
}

// ListRankings returns poll rows, optionally filtered to one week.
func (s *RankingService) ListRankings(ctx context.Context, week *int) ([]ranking.Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "RankingService.ListRankings")
	defer span.End()

	if week != nil && *week < 1 {
		return nil, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}
	out, err := s.rankings.ListRankings(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}
	return out, nil
}

type ScheduleService struct {
	schedule schedule.Repository
}

func NewScheduleService(sched schedule.Repository) *ScheduleService {
	return &ScheduleService{schedule: sched}
}

func (s *ScheduleService) ListGames(ctx context.Context) ([]schedule.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.ListGames")
	defer span.End()

	out, err := s.schedule.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule games: %w", err)
	}
	return out, nil
}
