package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type HierarchyRepository struct {
	db *sqlx.DB
}

func NewHierarchyRepository(db *sqlx.DB) *HierarchyRepository {
	return &HierarchyRepository{db: db}
}

func (r *HierarchyRepository) UpsertConferences(ctx context.Context, items []hierarchy.Conference) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "conferences", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("conferences", conferenceFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert conference query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert conference %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *HierarchyRepository) UpsertDivisions(ctx context.Context, items []hierarchy.Division) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "divisions", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("divisions", divisionFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert division query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert division %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *HierarchyRepository) ListConferences(ctx context.Context) ([]hierarchy.Conference, error) {
	query, args, err := qb.Select("*").From("conferences").OrderBy("name", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select conferences query: %w", err)
	}

	var rows []conferenceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select conferences: %w", err)
	}

	out := make([]hierarchy.Conference, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *HierarchyRepository) ListDivisionsByConference(ctx context.Context, conferenceID string) ([]hierarchy.Division, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(qb.Eq("conference_id", conferenceID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select divisions by conference: %w", err)
	}

	out := make([]hierarchy.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
