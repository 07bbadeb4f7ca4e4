package venue

import "context"

type Repository interface {
	UpsertVenues(ctx context.Context, items []Venue) error
	ListVenues(ctx context.Context) ([]Venue, error)
}
