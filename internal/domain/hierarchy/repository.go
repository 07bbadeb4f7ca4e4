package hierarchy

import "context"

// Repository describes conference/division persistence needs from use cases.
type Repository interface {
	UpsertConferences(ctx context.Context, items []Conference) error
	UpsertDivisions(ctx context.Context, items []Division) error
	ListConferences(ctx context.Context) ([]Conference, error)
	ListDivisionsByConference(ctx context.Context, conferenceID string) ([]Division, error)
}
