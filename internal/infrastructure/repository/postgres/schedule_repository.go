package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/schedule"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) UpsertGames(ctx context.Context, items []schedule.Game) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "schedule_games", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("schedule_games", gameFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert game query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert game %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) ListGames(ctx context.Context) ([]schedule.Game, error) {
	query, args, err := qb.Select("*").From("schedule_games").OrderBy("scheduled", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
