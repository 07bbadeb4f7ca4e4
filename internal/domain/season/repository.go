package season

import "context"

type Repository interface {
	UpsertSeasons(ctx context.Context, items []Season) error
	ListSeasons(ctx context.Context) ([]Season, error)
}
