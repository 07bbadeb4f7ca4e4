package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/venue"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) UpsertVenues(ctx context.Context, items []venue.Venue) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "venues", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("venues", venueFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert venue query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert venue %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *VenueRepository) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("*").From("venues").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
