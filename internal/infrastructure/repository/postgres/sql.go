package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// upsertRows runs one statement per row inside a single transaction so a
// partially written batch never survives a failure.
func upsertRows(ctx context.Context, db *sqlx.DB, label string, statements func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s upsert: %w", label, err)
	}

	if err := statements(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s upsert: %w", label, err)
	}
	return nil
}
