package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/season"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) UpsertSeasons(ctx context.Context, items []season.Season) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "seasons", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("seasons", seasonFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert season query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert season %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *SeasonRepository) ListSeasons(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").OrderBy("year", "type_code").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
