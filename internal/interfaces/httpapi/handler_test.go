package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/team"
	"github.com/gridironhq/leaguesync/internal/infrastructure/repository/memory"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

type fixedGenerator struct {
	sql string
}

func (g fixedGenerator) Complete(context.Context, string, string) (string, error) {
	return g.sql, nil
}

type fixedRunner struct {
	columns []string
	rows    [][]any
}

func (r fixedRunner) QueryRows(context.Context, string) ([]string, [][]any, error) {
	return r.columns, r.rows, nil
}

func newTestRouter(t *testing.T, store *memory.Store) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(
		usecase.NewLeagueService(store, store, store),
		usecase.NewTeamService(store, store, store),
		usecase.NewPlayerService(store, store),
		usecase.NewRankingService(store),
		usecase.NewScheduleService(store),
		usecase.NewAssistantService(
			fixedGenerator{sql: "SELECT name FROM teams"},
			fixedRunner{columns: []string{"name"}, rows: [][]any{{"Aggies"}}},
			nil,
		),
		logger,
	)
	return NewRouter(handler, logger, nil)
}

func seedStore(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()

	name := "Aggies"
	conferenceID := "11111111-0000-4000-8000-000000000001"
	teamID := "aaaaaaaa-0000-4000-8000-000000000001"
	week := 1

	if err := store.UpsertConferences(ctx, []hierarchy.Conference{{ID: conferenceID, Name: "SEC"}}); err != nil {
		t.Fatalf("seed conferences: %v", err)
	}
	if err := store.UpsertDivisions(ctx, []hierarchy.Division{{ID: "d1", Name: "West", ConferenceID: conferenceID}}); err != nil {
		t.Fatalf("seed divisions: %v", err)
	}
	if err := store.UpsertTeams(ctx, []team.Team{{ID: teamID, Name: &name, ConferenceID: &conferenceID}}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	if err := store.UpsertPlayers(ctx, []roster.Player{{ID: "p1", LastName: "Jackson", TeamID: teamID}}); err != nil {
		t.Fatalf("seed players: %v", err)
	}
	if err := store.UpsertRankings(ctx, []ranking.Ranking{{ID: "r1", PollID: "AP25", TeamID: teamID, Week: &week}}); err != nil {
		t.Fatalf("seed rankings: %v", err)
	}
}

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return envelope
}

func TestRouter_ListTeams(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store)
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	data, ok := envelope["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one team, got %v", envelope["data"])
	}
}

func TestRouter_GetTeamDetail(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store)
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/aaaaaaaa-0000-4000-8000-000000000001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected detail object, got %v", envelope["data"])
	}
	players, ok := data["players"].([]any)
	if !ok || len(players) != 1 {
		t.Fatalf("expected one roster player, got %v", data["players"])
	}
}

func TestRouter_GetTeamNotFound(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store)
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_ListRankingsWeekFilter(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store)
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings?week=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	data, ok := envelope["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one ranking row, got %v", envelope["data"])
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/rankings?week=nope", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad week, got %d", rec.Code)
	}
}

func TestRouter_AssistantQuery(t *testing.T) {
	store := memory.NewStore()
	router := newTestRouter(t, store)

	body := strings.NewReader(`{"question":"Which team has the most wins?"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/query", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected answer object, got %v", envelope["data"])
	}
	sql, _ := data["sql"].(string)
	if !strings.Contains(sql, "LIMIT 200") {
		t.Fatalf("expected row limit appended to generated sql, got %q", sql)
	}
}

func TestRouter_AssistantQueryValidation(t *testing.T) {
	store := memory.NewStore()
	router := newTestRouter(t, store)

	body := strings.NewReader(`{"question":""}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/query", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_Healthz(t *testing.T) {
	store := memory.NewStore()
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
