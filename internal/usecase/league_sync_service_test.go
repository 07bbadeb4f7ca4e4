package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gridironhq/leaguesync/internal/infrastructure/repository/memory"
	"github.com/gridironhq/leaguesync/internal/normalize"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

type stubFetcher struct {
	snap normalize.Snapshot
	err  error
}

func (f stubFetcher) FetchSnapshot(_ context.Context, year int, seasonType string, _ []int) (normalize.Snapshot, error) {
	if f.err != nil {
		return normalize.Snapshot{}, f.err
	}
	snap := f.snap
	snap.Year = year
	snap.SeasonType = seasonType
	return snap, nil
}

func newIngestion(store *memory.Store) *usecase.IngestionService {
	return usecase.NewIngestionService(usecase.IngestionServiceDeps{
		Hierarchy: store,
		Venues:    store,
		Teams:     store,
		Seasons:   store,
		Players:   store,
		Coaches:   store,
		Stats:     store,
		Rankings:  store,
		Schedule:  store,
	})
}

func TestLeagueSyncService_Sync(t *testing.T) {
	store := memory.NewStore()
	fetcher := stubFetcher{
		snap: normalize.Snapshot{
			Hierarchy: map[string]any{
				"divisions": []any{
					map[string]any{
						"name": "FBS",
						"conferences": []any{
							map[string]any{"name": "SEC"},
						},
					},
				},
			},
			Teams: map[string]any{
				"teams": []any{
					map[string]any{
						"id":         "aaaaaaaa-0000-4000-8000-000000000001",
						"market":     "Texas A&M",
						"name":       "Aggies",
						"conference": map[string]any{"name": "SEC"},
					},
				},
			},
			Seasons: map[string]any{
				"seasons": []any{
					map[string]any{"year": 2025.0, "type": "REG"},
				},
			},
		},
	}

	service := usecase.NewLeagueSyncService(fetcher, newIngestion(store), nil)
	result, err := service.Sync(context.Background(), usecase.SyncInput{Year: 2025, SeasonType: "REG"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if result.Counts["teams"] != 1 || result.Counts["conferences"] != 1 || result.Counts["seasons"] != 1 {
		t.Fatalf("unexpected counts: %v", result.Counts)
	}

	teams, err := store.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != "aaaaaaaa-0000-4000-8000-000000000001" {
		t.Fatalf("team not persisted: %+v", teams)
	}
	if teams[0].ConferenceID == nil {
		t.Fatalf("conference link not persisted")
	}
}

func TestLeagueSyncService_Sync_InvalidInput(t *testing.T) {
	service := usecase.NewLeagueSyncService(stubFetcher{}, newIngestion(memory.NewStore()), nil)

	if _, err := service.Sync(context.Background(), usecase.SyncInput{Year: 0, SeasonType: "REG"}); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad year, got %v", err)
	}
	if _, err := service.Sync(context.Background(), usecase.SyncInput{Year: 2025}); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing season type, got %v", err)
	}
}

func TestLeagueSyncService_Sync_FetchFailure(t *testing.T) {
	wantErr := errors.New("feed down")
	service := usecase.NewLeagueSyncService(stubFetcher{err: wantErr}, newIngestion(memory.NewStore()), nil)

	if _, err := service.Sync(context.Background(), usecase.SyncInput{Year: 2025, SeasonType: "REG"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestLeagueSyncService_Sync_BadDocumentFailsRun(t *testing.T) {
	fetcher := stubFetcher{snap: normalize.Snapshot{Hierarchy: "not a document"}}
	service := usecase.NewLeagueSyncService(fetcher, newIngestion(memory.NewStore()), nil)

	if _, err := service.Sync(context.Background(), usecase.SyncInput{Year: 2025, SeasonType: "REG"}); err == nil {
		t.Fatalf("expected error for non-mapping document")
	}
}
