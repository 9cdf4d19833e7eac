package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle the stores run their queries on.
// Both *sql.DB and *sql.Tx satisfy it, so a store can be constructed
// over either a pooled connection or an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
