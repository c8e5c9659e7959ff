package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

const taskColumns = `id, title, description, created_at`

// PostgresTaskStore implements store.TaskStore on the tasks table.
// Rows carry an internal UUID primary key; the logical id is a separate
// unique column and is the only identifier that leaves the store.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a PostgresTaskStore. The caller owns db.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// filterClause renders the WHERE clause for filter, numbering placeholders
// from $1.
func filterClause(filter store.TaskFilter) (string, []any) {
	if filter.MatchesAll() {
		return "", nil
	}
	return ` WHERE title ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\'`, []any{filter.Pattern}
}

// Count implements store.TaskStore.Count.
func (s *PostgresTaskStore) Count(ctx context.Context, filter store.TaskFilter) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := filterClause(filter)
	query := `SELECT COUNT(*) FROM tasks` + where

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Error("failed to count tasks", slog.String("error", err.Error()))
		return 0, store.NewStoreError("task", "count", "count query", MapError(err))
	}

	return count, nil
}

// List implements store.TaskStore.List.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	filter store.TaskFilter,
	offset, limit int,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := filterClause(filter)
	n := len(args)

	var query strings.Builder
	query.WriteString(`SELECT ` + taskColumns + ` FROM tasks`)
	query.WriteString(where)
	fmt.Fprintf(&query, ` ORDER BY id ASC OFFSET $%d LIMIT $%d`, n+1, n+2)
	args = append(args, max(offset, 0), max(limit, 0))

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int("offset", offset),
			slog.Int("limit", limit))
		return nil, store.NewStoreError("task", "list", "list query", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close task rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0, max(limit, 0))
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "row iteration", MapError(err))
	}

	log.Debug("tasks listed",
		slog.Int("count", len(tasks)),
		slog.Int("offset", offset))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by id",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "get", "select by id", MapError(err))
	}

	return task, nil
}

// MaxID implements store.TaskStore.MaxID.
func (s *PostgresTaskStore) MaxID(ctx context.Context) (int64, error) {
	var highest int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM tasks`).Scan(&highest); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to read highest task id",
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("task", "max_id", "max id query", MapError(err))
	}
	return highest, nil
}

// Create implements store.TaskStore.Create.
// A unique violation on the logical id is reported as store.ErrTaskIDConflict
// so the caller can allocate a fresh id and retry.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (pk, id, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(),
		task.ID,
		task.Title,
		task.Description,
		task.CreatedAt.UTC(),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("task id already taken", slog.Int64("task_id", task.ID))
			return store.ErrTaskIDConflict
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return store.NewStoreError("task", "create", "insert", MapError(err))
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	return nil
}

// Update implements store.TaskStore.Update. Only title and description change.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = $1, description = $2 WHERE id = $3`,
		task.Title,
		task.Description,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return store.NewStoreError("task", "update", "update statement", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return store.NewStoreError("task", "delete", "delete statement", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &task.CreatedAt); err != nil {
		return nil, err
	}
	task.CreatedAt = task.CreatedAt.UTC()
	return &task, nil
}
