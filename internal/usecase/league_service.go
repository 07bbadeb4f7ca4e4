package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/season"
	"github.com/gridironhq/leaguesync/internal/domain/venue"
)

// LeagueService serves the league structure reads: conferences, divisions,
// venues, seasons.
type LeagueService struct {
	hierarchy hierarchy.Repository
	venues    venue.Repository
	seasons   season.Repository
}

func NewLeagueService(h hierarchy.Repository, v venue.Repository, s season.Repository) *LeagueService {
	return &LeagueService{hierarchy: h, venues: v, seasons: s}
}

func (s *LeagueService) ListConferences(ctx context.Context) ([]hierarchy.Conference, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListConferences")
	defer span.End()

	out, err := s.hierarchy.ListConferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return out, nil
}

func (s *LeagueService) ListDivisions(ctx context.Context, conferenceID string) ([]hierarchy.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListDivisions")
	defer span.End()

	if strings.TrimSpace(conferenceID) == "" {
		return nil, fmt.Errorf("%w: conference id is required", ErrInvalidInput)
	}
	out, err := s.hierarchy.ListDivisionsByConference(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	return out, nil
}

func (s *LeagueService) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListVenues")
	defer span.End()

	out, err := s.venues.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return out, nil
}

func (s *LeagueService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListSeasons")
	defer span.End()

	out, err := s.seasons.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return out, nil
}
