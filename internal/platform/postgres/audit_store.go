package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PostgresAuditLogStore implements store.AuditLogStore on the audit_logs table.
// updated_content is JSONB and NULL for deletions; the serial id breaks ties
// between entries written in the same millisecond.
type PostgresAuditLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuditLogStore creates a PostgresAuditLogStore.
func NewPostgresAuditLogStore(db store.DBTX, logger *slog.Logger) *PostgresAuditLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAuditLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "audit_log_store")),
	}
}

var _ store.AuditLogStore = (*PostgresAuditLogStore)(nil)

// Append implements store.AuditLogStore.Append.
func (s *PostgresAuditLogStore) Append(ctx context.Context, entry *domain.AuditLogEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("audit entry validation failed",
			slog.String("error", err.Error()),
			slog.String("action", string(entry.Action)))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var content any
	if entry.UpdatedContent.Kind() != domain.ContentNone {
		raw, err := json.Marshal(entry.UpdatedContent)
		if err != nil {
			return fmt.Errorf("failed to encode audit content: %w", err)
		}
		content = string(raw)
	}

	query := `
		INSERT INTO audit_logs (timestamp, action, task_id, updated_content)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.Timestamp.UTC(),
		string(entry.Action),
		entry.TaskID,
		content,
	)
	if err != nil {
		log.Error("failed to append audit entry",
			slog.String("error", err.Error()),
			slog.String("action", string(entry.Action)),
			slog.Int64("task_id", entry.TaskID))
		return store.NewStoreError("audit_log", "append", "insert", MapError(err))
	}

	return nil
}

// Count implements store.AuditLogStore.Count.
func (s *PostgresAuditLogStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&count); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count audit entries",
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("audit_log", "count", "count query", MapError(err))
	}
	return count, nil
}

// List implements store.AuditLogStore.List.
func (s *PostgresAuditLogStore) List(ctx context.Context, offset, limit int) ([]*domain.AuditLogEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT timestamp, action, task_id, updated_content
		FROM audit_logs
		ORDER BY timestamp DESC, id DESC
		OFFSET $1 LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, max(offset, 0), max(limit, 0))
	if err != nil {
		log.Error("failed to list audit entries",
			slog.String("error", err.Error()),
			slog.Int("offset", offset),
			slog.Int("limit", limit))
		return nil, store.NewStoreError("audit_log", "list", "list query", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close audit rows", slog.String("error", closeErr.Error()))
		}
	}()

	entries := make([]*domain.AuditLogEntry, 0, max(limit, 0))
	for rows.Next() {
		var (
			timestamp time.Time
			action    string
			taskID    int64
			raw       []byte
		)
		if err := rows.Scan(&timestamp, &action, &taskID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}

		content, err := domain.DecodeUpdatedContent(domain.AuditAction(action), raw)
		if err != nil {
			log.Error("stored audit content is unreadable",
				slog.String("error", err.Error()),
				slog.String("action", action),
				slog.Int64("task_id", taskID))
			return nil, fmt.Errorf("failed to decode audit content: %w", err)
		}

		entries = append(entries, &domain.AuditLogEntry{
			Timestamp:      timestamp.UTC(),
			Action:         domain.AuditAction(action),
			TaskID:         taskID,
			UpdatedContent: content,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("audit_log", "list", "row iteration", MapError(err))
	}

	return entries, nil
}
