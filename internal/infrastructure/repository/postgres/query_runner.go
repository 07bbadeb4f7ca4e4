package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// QueryRunner executes assistant-generated statements and returns a plain
// result grid. The usecase layer guarantees the statement is a single SELECT
// before it gets here.
type QueryRunner struct {
	db *sqlx.DB
}

func NewQueryRunner(db *sqlx.DB) *QueryRunner {
	return &QueryRunner{db: db}
}

func (r *QueryRunner) QueryRows(ctx context.Context, query string) ([]string, [][]any, error) {
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read result columns: %w", err)
	}

	var out [][]any
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, nil, fmt.Errorf("scan result row: %w", err)
		}
		for i, v := range values {
			// lib/pq hands text columns back as []byte.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate result rows: %w", err)
	}

	return columns, out, nil
}
