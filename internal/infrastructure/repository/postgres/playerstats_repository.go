package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/playerstats"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) UpsertSeasonStats(ctx context.Context, items []playerstats.SeasonStat) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "player_statistics", func(tx *sqlx.Tx) error {
		for _, item := range items {
			// Surrogate row ids are regenerated per run, so the natural key
			// carries conflict detection.
			query, args, err := qb.UpsertModel("player_statistics", playerStatFromDomain(item), "player_id", "team_id", "season_id")
			if err != nil {
				return fmt.Errorf("build upsert player statistic query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert player statistic %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID string) ([]playerstats.SeasonStat, error) {
	query, args, err := qb.Select("*").From("player_statistics").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("season_id", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player statistics query: %w", err)
	}

	var rows []playerStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player statistics: %w", err)
	}

	out := make([]playerstats.SeasonStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
