// Package postgres provides PostgreSQL implementations of the store
// interfaces, plus the embedded goose migrations that create their schema.
//
// Stores run against a store.DBTX, so the same code serves a pooled *sql.DB
// opened with the pgx stdlib driver or a *sql.Tx in integration tests.
// Driver errors are mapped onto the sentinels in internal/store before they
// leave the package.
package postgres
