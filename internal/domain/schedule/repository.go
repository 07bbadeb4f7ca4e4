package schedule

import "context"

type Repository interface {
	UpsertGames(ctx context.Context, items []Game) error
	ListGames(ctx context.Context) ([]Game, error)
}
