package ranking

import "context"

type Repository interface {
	UpsertRankings(ctx context.Context, items []Ranking) error
	ListRankings(ctx context.Context, week *int) ([]Ranking, error)
}
