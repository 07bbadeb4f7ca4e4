package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

func (r *RankingRepository) UpsertRankings(ctx context.Context, items []ranking.Ranking) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "rankings", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("rankings", rankingFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert ranking query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert ranking %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *RankingRepository) ListRankings(ctx context.Context, week *int) ([]ranking.Ranking, error) {
	builder := qb.Select("*").From("rankings")
	if week != nil {
		builder = builder.Where(qb.Eq("week", *week))
	}
	query, args, err := builder.OrderBy("poll_id", "week", "rank", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rankings query: %w", err)
	}

	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rankings: %w", err)
	}

	out := make([]ranking.Ranking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
