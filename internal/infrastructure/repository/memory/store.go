// Package memory provides map-backed repositories for tests and for running
// the API without a database. One Store backs every repository interface so
// relational reads see the rows a sync just wrote.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/playerstats"
	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/schedule"
	"github.com/gridironhq/leaguesync/internal/domain/season"
	"github.com/gridironhq/leaguesync/internal/domain/team"
	"github.com/gridironhq/leaguesync/internal/domain/venue"
)

type Store struct {
	mu sync.RWMutex

	conferences map[string]hierarchy.Conference
	divisions   map[string]hierarchy.Division
	venues      map[string]venue.Venue
	teams       map[string]team.Team
	seasons     map[string]season.Season
	players     map[string]roster.Player
	coaches     map[string]roster.Coach
	stats       map[string]playerstats.SeasonStat
	rankings    map[string]ranking.Ranking
	games       map[string]schedule.Game
}

func NewStore() *Store {
	return &Store{
		conferences: make(map[string]hierarchy.Conference),
		divisions:   make(map[string]hierarchy.Division),
		venues:      make(map[string]venue.Venue),
		teams:       make(map[string]team.Team),
		seasons:     make(map[string]season.Season),
		players:     make(map[string]roster.Player),
		coaches:     make(map[string]roster.Coach),
		stats:       make(map[string]playerstats.SeasonStat),
		rankings:    make(map[string]ranking.Ranking),
		games:       make(map[string]schedule.Game),
	}
}

func (s *Store) UpsertConferences(_ context.Context, items []hierarchy.Conference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.conferences[item.ID] = item
	}
	return nil
}

func (s *Store) UpsertDivisions(_ context.Context, items []hierarchy.Division) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.divisions[item.ID] = item
	}
	return nil
}

func (s *Store) ListConferences(_ context.Context) ([]hierarchy.Conference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]hierarchy.Conference, 0, len(s.conferences))
	for _, item := range s.conferences {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) ListDivisionsByConference(_ context.Context, conferenceID string) ([]hierarchy.Division, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []hierarchy.Division
	for _, item := range s.divisions {
		if item.ConferenceID == conferenceID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpsertVenues(_ context.Context, items []venue.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.venues[item.ID] = item
	}
	return nil
}

func (s *Store) ListVenues(_ context.Context) ([]venue.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]venue.Venue, 0, len(s.venues))
	for _, item := range s.venues {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertTeams(_ context.Context, items []team.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.teams[item.ID] = item
	}
	return nil
}

func (s *Store) ListTeams(_ context.Context) ([]team.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]team.Team, 0, len(s.teams))
	for _, item := range s.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.teams[teamID]
	return item, ok, nil
}

func (s *Store) UpsertSeasons(_ context.Context, items []season.Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.seasons[item.ID] = item
	}
	return nil
}

func (s *Store) ListSeasons(_ context.Context) ([]season.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]season.Season, 0, len(s.seasons))
	for _, item := range s.seasons {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].TypeCode < out[j].TypeCode
	})
	return out, nil
}

func (s *Store) UpsertPlayers(_ context.Context, items []roster.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.players[item.ID] = item
	}
	return nil
}

func (s *Store) ListPlayersByTeam(_ context.Context, teamID string) ([]roster.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []roster.Player
	for _, item := range s.players {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetPlayerByID(_ context.Context, playerID string) (roster.Player, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.players[playerID]
	return item, ok, nil
}

func (s *Store) UpsertCoaches(_ context.Context, items []roster.Coach) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.coaches[item.ID] = item
	}
	return nil
}

func (s *Store) ListCoachesByTeam(_ context.Context, teamID string) ([]roster.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []roster.Coach
	for _, item := range s.coaches {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertSeasonStats(_ context.Context, items []playerstats.SeasonStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		key := item.PlayerID + "|" + item.TeamID + "|" + item.SeasonID
		s.stats[key] = item
	}
	return nil
}

func (s *Store) ListByPlayer(_ context.Context, playerID string) ([]playerstats.SeasonStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []playerstats.SeasonStat
	for _, item := range s.stats {
		if item.PlayerID == playerID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonID != out[j].SeasonID {
			return out[i].SeasonID < out[j].SeasonID
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out, nil
}

func (s *Store) UpsertRankings(_ context.Context, items []ranking.Ranking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.rankings[item.ID] = item
	}
	return nil
}

func (s *Store) ListRankings(_ context.Context, week *int) ([]ranking.Ranking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ranking.Ranking
	for _, item := range s.rankings {
		if week != nil && (item.Week == nil || *item.Week != *week) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		left, right := 0, 0
		if out[i].Rank != nil {
			left = *out[i].Rank
		}
		if out[j].Rank != nil {
			right = *out[j].Rank
		}
		if left != right {
			return left < right
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpsertGames(_ context.Context, items []schedule.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		s.games[item.ID] = item
	}
	return nil
}

func (s *Store) ListGames(_ context.Context) ([]schedule.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schedule.Game, 0, len(s.games))
	for _, item := range s.games {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		left, right := "", ""
		if out[i].Scheduled != nil {
			left = *out[i].Scheduled
		}
		if out[j].Scheduled != nil {
			right = *out[j].Scheduled
		}
		if left != right {
			return left < right
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
