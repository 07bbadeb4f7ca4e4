package usecase

import (
	"context"
	"fmt"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/playerstats"
	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/schedule"
	"github.com/gridironhq/leaguesync/internal/domain/season"
	"github.com/gridironhq/leaguesync/internal/domain/team"
	"github.com/gridironhq/leaguesync/internal/domain/venue"
	"github.com/gridironhq/leaguesync/internal/normalize"
	"github.com/gridironhq/leaguesync/internal/platform/logging"
)

// IngestionService writes one normalized table set to storage. Tables are
// persisted in dependency order so a child row never lands before the row it
// references.
type IngestionService struct {
	hierarchy hierarchy.Repository
	venues    venue.Repository
	teams     team.Repository
	seasons   season.Repository
	players   roster.PlayerRepository
	coaches   roster.CoachRepository
	stats     playerstats.Repository
	rankings  ranking.Repository
	schedule  schedule.Repository
	logger    *logging.Logger
}

type IngestionServiceDeps struct {
	Hierarchy hierarchy.Repository
	Venues    venue.Repository
	Teams     team.Repository
	Seasons   season.Repository
	Players   roster.PlayerRepository
	Coaches   roster.CoachRepository
	Stats     playerstats.Repository
	Rankings  ranking.Repository
	Schedule  schedule.Repository
	Logger    *logging.Logger
}

func NewIngestionService(deps IngestionServiceDeps) *IngestionService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		hierarchy: deps.Hierarchy,
		venues:    deps.Venues,
		teams:     deps.Teams,
		seasons:   deps.Seasons,
		players:   deps.Players,
		coaches:   deps.Coaches,
		stats:     deps.Stats,
		rankings:  deps.Rankings,
		schedule:  deps.Schedule,
		logger:    logger,
	}
}

func (s *IngestionService) PersistTables(ctx context.Context, tables normalize.Tables) error {
	ctx, span := startUsecaseSpan(ctx, "IngestionService.PersistTables")
	defer span.End()

	if err := s.hierarchy.UpsertConferences(ctx, tables.Conferences); err != nil {
		return fmt.Errorf("persist conferences: %w", err)
	}
	if err := s.hierarchy.UpsertDivisions(ctx, tables.Divisions); err != nil {
		return fmt.Errorf("persist divisions: %w", err)
	}
	if err := s.venues.UpsertVenues(ctx, tables.Venues); err != nil {
		return fmt.Errorf("persist venues: %w", err)
	}
	if err := s.teams.UpsertTeams(ctx, tables.Teams); err != nil {
		return fmt.Errorf("persist teams: %w", err)
	}
	if err := s.seasons.UpsertSeasons(ctx, tables.Seasons); err != nil {
		return fmt.Errorf("persist seasons: %w", err)
	}
	if err := s.players.UpsertPlayers(ctx, tables.Players); err != nil {
		return fmt.Errorf("persist players: %w", err)
	}
	if err := s.coaches.UpsertCoaches(ctx, tables.Coaches); err != nil {
		return fmt.Errorf("persist coaches: %w", err)
	}
	if err := s.stats.UpsertSeasonStats(ctx, tables.PlayerStatistics); err != nil {
		return fmt.Errorf("persist player statistics: %w", err)
	}
	if err := s.rankings.UpsertRankings(ctx, tables.Rankings); err != nil {
		return fmt.Errorf("persist rankings: %w", err)
	}
	if err := s.schedule.UpsertGames(ctx, tables.ScheduleGames); err != nil {
		return fmt.Errorf("persist schedule games: %w", err)
	}

	s.logger.InfoContext(ctx, "normalized tables persisted", "counts", tables.Counts())
	return nil
}
