package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/team"
)

// TeamDetail is one team together with its current roster.
type TeamDetail struct {
	Team    team.Team
	Players []roster.Player
	Coaches []roster.Coach
}

type TeamService struct {
	teams   team.Repository
	players roster.PlayerRepository
	coaches roster.CoachRepository
}

func NewTeamService(teams team.Repository, players roster.PlayerRepository, coaches roster.CoachRepository) *TeamService {
	return &TeamService{teams: teams, players: players, coaches: coaches}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListTeams")
	defer span.End()

	out, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return out, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.GetTeam")
	defer span.End()

	if strings.TrimSpace(teamID) == "" {
		return TeamDetail{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	row, found, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return TeamDetail{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	players, err := s.players.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team players: %w", err)
	}
	coaches, err := s.coaches.ListCoachesByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team coaches: %w", err)
	}

	return TeamDetail{Team: row, Players: players, Coaches: coaches}, nil
}
