package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/team"
)

func TestStore_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	name := "Aggies"
	teams := []team.Team{{ID: "t1", Name: &name}}
	require.NoError(t, store.UpsertTeams(ctx, teams))
	require.NoError(t, store.UpsertTeams(ctx, teams))

	listed, err := store.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	updated := "Fightin' Aggies"
	teams[0].Name = &updated
	require.NoError(t, store.UpsertTeams(ctx, teams))

	got, found, err := store.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Fightin' Aggies", *got.Name)
}

func TestStore_ListOrderingIsDeterministic(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.UpsertConferences(ctx, []hierarchy.Conference{
		{ID: "c3", Name: "Pac-12"},
		{ID: "c1", Name: "ACC"},
		{ID: "c2", Name: "Big Ten"},
	}))

	listed, err := store.ListConferences(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{listed[0].ID, listed[1].ID, listed[2].ID})
}

func TestStore_ScopedLists(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.UpsertPlayers(ctx, []roster.Player{
		{ID: "p1", LastName: "Jackson", TeamID: "t1"},
		{ID: "p2", LastName: "Smith", TeamID: "t2"},
	}))

	week1, week2 := 1, 2
	require.NoError(t, store.UpsertRankings(ctx, []ranking.Ranking{
		{ID: "r1", PollID: "AP25", TeamID: "t1", Week: &week1},
		{ID: "r2", PollID: "AP25", TeamID: "t2", Week: &week2},
	}))

	players, err := store.ListPlayersByTeam(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Jackson", players[0].LastName)

	rankings, err := store.ListRankings(ctx, &week2)
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	assert.Equal(t, "r2", rankings[0].ID)

	all, err := store.ListRankings(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
