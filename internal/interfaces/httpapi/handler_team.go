package httpapi

import (
	"net/http"

	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/team"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	detail, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]playerDTO, 0, len(detail.Players))
	for _, p := range detail.Players {
		players = append(players, playerToDTO(p))
	}
	coaches := make([]coachDTO, 0, len(detail.Coaches))
	for _, c := range detail.Coaches {
		coaches = append(coaches, coachToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailDTO{
		Team:    teamToDTO(detail.Team),
		Players: players,
		Coaches: coaches,
	})
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.playerService.ListTeamPlayers(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	detail, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	stats := make([]seasonStatDTO, 0, len(detail.Statistics))
	for _, s := range detail.Statistics {
		stats = append(stats, seasonStatDTO{
			SeasonID:            s.SeasonID,
			TeamID:              s.TeamID,
			GamesPlayed:         s.GamesPlayed,
			GamesStarted:        s.GamesStarted,
			RushingYards:        s.RushingYards,
			RushingTouchdowns:   s.RushingTouchdowns,
			ReceivingYards:      s.ReceivingYards,
			ReceivingTouchdowns: s.ReceivingTouchdowns,
			KickReturnYards:     s.KickReturnYards,
			Fumbles:             s.Fumbles,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailDTO{
		Player:     playerToDTO(detail.Player),
		Statistics: stats,
	})
}

type teamDTO struct {
	ID               string  `json:"id"`
	Market           *string `json:"market,omitempty"`
	Name             *string `json:"name,omitempty"`
	Alias            *string `json:"alias,omitempty"`
	Founded          *int    `json:"founded,omitempty"`
	Mascot           *string `json:"mascot,omitempty"`
	FightSong        *string `json:"fightSong,omitempty"`
	ChampionshipsWon *int    `json:"championshipsWon,omitempty"`
	ConferenceID     *string `json:"conferenceId,omitempty"`
	DivisionID       *string `json:"divisionId,omitempty"`
	VenueID          *string `json:"venueId,omitempty"`
}

type teamDetailDTO struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
	Coaches []coachDTO  `json:"coaches"`
}

type playerDTO struct {
	ID           string  `json:"id"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     string  `json:"lastName"`
	AbbrName     *string `json:"abbrName,omitempty"`
	BirthPlace   *string `json:"birthPlace,omitempty"`
	Position     *string `json:"position,omitempty"`
	HeightInches *int    `json:"heightInches,omitempty"`
	Weight       *int    `json:"weight,omitempty"`
	Status       *string `json:"status,omitempty"`
	Eligibility  *string `json:"eligibility,omitempty"`
	TeamID       string  `json:"teamId"`
}

type coachDTO struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Position *string `json:"position,omitempty"`
	TeamID   string  `json:"teamId"`
}

type playerDetailDTO struct {
	Player     playerDTO       `json:"player"`
	Statistics []seasonStatDTO `json:"statistics"`
}

type seasonStatDTO struct {
	SeasonID            string `json:"seasonId"`
	TeamID              string `json:"teamId"`
	GamesPlayed         *int   `json:"gamesPlayed,omitempty"`
	GamesStarted        *int   `json:"gamesStarted,omitempty"`
	RushingYards        *int   `json:"rushingYards,omitempty"`
	RushingTouchdowns   *int   `json:"rushingTouchdowns,omitempty"`
	ReceivingYards      *int   `json:"receivingYards,omitempty"`
	ReceivingTouchdowns *int   `json:"receivingTouchdowns,omitempty"`
	KickReturnYards     *int   `json:"kickReturnYards,omitempty"`
	Fumbles             *int   `json:"fumbles,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:               t.ID,
		Market:           t.Market,
		Name:             t.Name,
		Alias:            t.Alias,
		Founded:          t.Founded,
		Mascot:           t.Mascot,
		FightSong:        t.FightSong,
		ChampionshipsWon: t.ChampionshipsWon,
		ConferenceID:     t.ConferenceID,
		DivisionID:       t.DivisionID,
		VenueID:          t.VenueID,
	}
}

func playerToDTO(p roster.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		AbbrName:     p.AbbrName,
		BirthPlace:   p.BirthPlace,
		Position:     p.Position,
		HeightInches: p.HeightInches,
		Weight:       p.Weight,
		Status:       p.Status,
		Eligibility:  p.Eligibility,
		TeamID:       p.TeamID,
	}
}

func coachToDTO(c roster.Coach) coachDTO {
	return coachDTO{ID: c.ID, FullName: c.FullName, Position: c.Position, TeamID: c.TeamID}
}
