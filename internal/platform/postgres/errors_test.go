package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "tasks",
		ColumnName:     "title",
		ConstraintName: "tasks_id_key",
	}
}

type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), expected: store.ErrDuplicate},
		{name: "check violation", err: newPgError("23514"), expected: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), expected: store.ErrInvalidEntity},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("insert: %w", newPgError("23505")),
			expected: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, postgres.MapError(tc.err), tc.expected)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, postgres.MapError(nil))

	generic := errors.New("connection reset")
	assert.Same(t, generic, postgres.MapError(generic))

	unmapped := newPgError("42601")
	assert.Equal(t, error(unmapped), postgres.MapError(unmapped))
}

func TestMapErrorNamesTheViolatedRule(t *testing.T) {
	t.Parallel()

	err := postgres.MapError(newPgError("23514"))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Contains(t, err.Error(), "constraint tasks_id_key")

	err = postgres.MapError(newPgError("23502"))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Contains(t, err.Error(), "column title is required")

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, postgres.MapError(newPgError("23505")), &pgErr)
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert: %w", newPgError("23505"))))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23514")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("other")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, postgres.CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrTaskNotFound))
	assert.ErrorIs(
		t,
		postgres.CheckRowsAffected(mockResult{rowsAffected: 0}, store.ErrTaskNotFound),
		store.ErrTaskNotFound,
	)
	assert.ErrorIs(t, postgres.CheckRowsAffected(mockResult{}, nil), store.ErrNotFound)
	assert.Error(t, postgres.CheckRowsAffected(nil, store.ErrTaskNotFound))

	failure := errors.New("driver failure")
	assert.ErrorIs(t, postgres.CheckRowsAffected(mockResult{err: failure}, nil), failure)
}
