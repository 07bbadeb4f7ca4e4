package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/season"
	"github.com/gridironhq/leaguesync/internal/domain/venue"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	rankingService   *usecase.RankingService
	scheduleService  *usecase.ScheduleService
	assistantService *usecase.AssistantService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	rankingService *usecase.RankingService,
	scheduleService *usecase.ScheduleService,
	assistantService *usecase.AssistantService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		teamService:      teamService,
		playerService:    playerService,
		rankingService:   rankingService,
		scheduleService:  scheduleService,
		assistantService: assistantService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListConferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConferences")
	defer span.End()

	conferences, err := h.leagueService.ListConferences(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list conferences failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]conferenceDTO, 0, len(conferences))
	for _, c := range conferences {
		items = append(items, conferenceToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListDivisionsByConference(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionsByConference")
	defer span.End()

	conferenceID := r.PathValue("conferenceID")
	divisions, err := h.leagueService.ListDivisions(ctx, conferenceID)
	if err != nil {
		h.logger.WarnContext(ctx, "list divisions failed", "conference_id", conferenceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	venues, err := h.leagueService.ListVenues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]venueDTO, 0, len(venues))
	for _, v := range venues {
		items = append(items, venueToDTO(v))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.leagueService.ListSeasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type conferenceDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Alias *string `json:"alias,omitempty"`
}

type divisionDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Alias        *string `json:"alias,omitempty"`
	ConferenceID string  `json:"conferenceId"`
}

type venueDTO struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Zip       *string  `json:"zip,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Capacity  *int     `json:"capacity,omitempty"`
	Surface   *string  `json:"surface,omitempty"`
	RoofType  *string  `json:"roofType,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type seasonDTO struct {
	ID        string  `json:"id"`
	Year      int     `json:"year"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Status    *string `json:"status,omitempty"`
	TypeCode  string  `json:"typeCode"`
}

func conferenceToDTO(c hierarchy.Conference) conferenceDTO {
	return conferenceDTO{ID: c.ID, Name: c.Name, Alias: c.Alias}
}

func divisionToDTO(d hierarchy.Division) divisionDTO {
	return divisionDTO{ID: d.ID, Name: d.Name, Alias: d.Alias, ConferenceID: d.ConferenceID}
}

func venueToDTO(v venue.Venue) venueDTO {
	return venueDTO{
		ID:        v.ID,
		Name:      v.Name,
		City:      v.City,
		State:     v.State,
		Country:   v.Country,
		Zip:       v.Zip,
		Address:   v.Address,
		Capacity:  v.Capacity,
		Surface:   v.Surface,
		RoofType:  v.RoofType,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
	}
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:        s.ID,
		Year:      s.Year,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    s.Status,
		TypeCode:  s.TypeCode,
	}
}
