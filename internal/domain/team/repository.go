package team

import "context"

type Repository interface {
	UpsertTeams(ctx context.Context, items []Team) error
	ListTeams(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
