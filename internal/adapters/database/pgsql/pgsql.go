package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// resolveMissingRow distinguishes "record does not exist" from "record exists
// but belongs to someone else" after an owner-scoped write touched zero rows.
// The table and column names come from compile-time constants in this
// package, never from user input.
func resolveMissingRow(ctx context.Context, pool *pgxpool.Pool, table, idColumn, id, op, collection string) error {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1;`, table, idColumn)
	var one int
	err := pool.QueryRow(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to check %s existence: %w", collection, err)
	}
	return &apperrors.PermissionError{Op: op, Collection: collection, RecordID: id}
}
