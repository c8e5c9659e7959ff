package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle used by the SQL-backed stores.
// Both *sql.DB and *sql.Tx satisfy it, so the same store can run against a
// pooled connection in production or a rolled-back transaction in tests.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
