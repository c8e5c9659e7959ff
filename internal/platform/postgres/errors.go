package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// SQLSTATE codes the stores translate into store errors.
const (
	uniqueViolationCode  = "23505"
	checkViolationCode   = "23514"
	notNullViolationCode = "23502"
)

// MapError translates a driver error into the matching store sentinel. The
// driver error stays in the chain so it can still be logged or inspected.
// Errors with no store meaning come back unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	pgErr, ok := asPgError(err)
	if !ok {
		return err
	}

	switch {
	case IsUniqueViolation(pgErr):
		return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
	case isCheckConstraintViolation(pgErr):
		return fmt.Errorf("%w: constraint %s rejected the row: %w",
			store.ErrInvalidEntity, pgErr.ConstraintName, err)
	case isNotNullViolation(pgErr):
		return fmt.Errorf("%w: column %s is required: %w",
			store.ErrInvalidEntity, pgErr.ColumnName, err)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err carries a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

func isCheckConstraintViolation(err error) bool {
	return hasCode(err, checkViolationCode)
}

func isNotNullViolation(err error) bool {
	return hasCode(err, notNullViolationCode)
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == code
}

// CheckRowsAffected returns notFound when an UPDATE or DELETE touched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("no result to check rows affected on")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
