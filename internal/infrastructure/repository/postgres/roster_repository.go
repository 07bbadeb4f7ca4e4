package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironhq/leaguesync/internal/domain/roster"
	qb "github.com/gridironhq/leaguesync/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) UpsertPlayers(ctx context.Context, items []roster.Player) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "players", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("players", playerFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert player query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert player %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *RosterRepository) ListPlayersByTeam(ctx context.Context, teamID string) ([]roster.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("last_name", "first_name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]roster.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RosterRepository) GetPlayerByID(ctx context.Context, playerID string) (roster.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Player{}, false, nil
		}
		return roster.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *RosterRepository) UpsertCoaches(ctx context.Context, items []roster.Coach) error {
	if len(items) == 0 {
		return nil
	}
	return upsertRows(ctx, r.db, "coaches", func(tx *sqlx.Tx) error {
		for _, item := range items {
			query, args, err := qb.UpsertModel("coaches", coachFromDomain(item), "id")
			if err != nil {
				return fmt.Errorf("build upsert coach query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert coach %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *RosterRepository) ListCoachesByTeam(ctx context.Context, teamID string) ([]roster.Coach, error) {
	query, args, err := qb.Select("*").From("coaches").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("full_name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select coaches query: %w", err)
	}

	var rows []coachTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select coaches by team: %w", err)
	}

	out := make([]roster.Coach, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
