package roster

import "context"

type PlayerRepository interface {
	UpsertPlayers(ctx context.Context, items []Player) error
	ListPlayersByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetPlayerByID(ctx context.Context, playerID string) (Player, bool, error)
}

type CoachRepository interface {
	UpsertCoaches(ctx context.Context, items []Coach) error
	ListCoachesByTeam(ctx context.Context, teamID string) ([]Coach, error)
}
