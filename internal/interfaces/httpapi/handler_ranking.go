package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/schedule"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	var week *int
	if raw := strings.TrimSpace(r.URL.Query().Get("week")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: week must be an integer, got %q", usecase.ErrInvalidInput, raw))
			return
		}
		week = &parsed
	}

	rankings, err := h.rankingService.ListRankings(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list rankings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingDTO, 0, len(rankings))
	for _, rk := range rankings {
		items = append(items, rankingToDTO(rk))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	games, err := h.scheduleService.ListGames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type rankingDTO struct {
	ID            string  `json:"id"`
	PollID        string  `json:"pollId"`
	PollName      *string `json:"pollName,omitempty"`
	SeasonID      *string `json:"seasonId,omitempty"`
	Week          *int    `json:"week,omitempty"`
	EffectiveTime *string `json:"effectiveTime,omitempty"`
	TeamID        string  `json:"teamId"`
	Rank          *int    `json:"rank,omitempty"`
	PrevRank      *int    `json:"prevRank,omitempty"`
	Points        *int    `json:"points,omitempty"`
	FirstPlace    *int    `json:"firstPlaceVotes,omitempty"`
	Wins          *int    `json:"wins,omitempty"`
	Losses        *int    `json:"losses,omitempty"`
	Ties          *int    `json:"ties,omitempty"`
}

type gameDTO struct {
	ID         string  `json:"id"`
	HomeTeamID *string `json:"homeTeamId,omitempty"`
	AwayTeamID *string `json:"awayTeamId,omitempty"`
	Scheduled  *string `json:"scheduled,omitempty"`
	VenueName  *string `json:"venueName,omitempty"`
}

func rankingToDTO(r ranking.Ranking) rankingDTO {
	return rankingDTO{
		ID:            r.ID,
		PollID:        r.PollID,
		PollName:      r.PollName,
		SeasonID:      r.SeasonID,
		Week:          r.Week,
		EffectiveTime: r.EffectiveTime,
		TeamID:        r.TeamID,
		Rank:          r.Rank,
		PrevRank:      r.PrevRank,
		Points:        r.Points,
		FirstPlace:    r.FirstPlace,
		Wins:          r.Wins,
		Losses:        r.Losses,
		Ties:          r.Ties,
	}
}

func gameToDTO(g schedule.Game) gameDTO {
	return gameDTO{
		ID:         g.ID,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		Scheduled:  g.Scheduled,
		VenueName:  g.VenueName,
	}
}
