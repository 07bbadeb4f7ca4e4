package playerstats

import "context"

type Repository interface {
	UpsertSeasonStats(ctx context.Context, items []SeasonStat) error
	ListByPlayer(ctx context.Context, playerID string) ([]SeasonStat, error)
}
