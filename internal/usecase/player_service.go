package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironhq/leaguesync/internal/domain/playerstats"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
)

// PlayerDetail is one player with their per-season statistics.
type PlayerDetail struct {
	Player     roster.Player
	Statistics []playerstats.SeasonStat
}

type PlayerService struct {
	players roster.PlayerRepository
	stats   playerstats.Repository
}

func NewPlayerService(players roster.PlayerRepository, stats playerstats.Repository) *PlayerService {
	return &PlayerService{players: players, stats: stats}
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.GetPlayer")
	defer span.End()

	if strings.TrimSpace(playerID) == "" {
		return PlayerDetail{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	row, found, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return PlayerDetail{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	stats, err := s.stats.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list player statistics: %w", err)
	}

	return PlayerDetail{Player: row, Statistics: stats}, nil
}

func (s *PlayerService) ListTeamPlayers(ctx context.Context, teamID string) ([]roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ListTeamPlayers")
	defer span.End()

	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	out, err := s.players.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}
	return out, nil
}
