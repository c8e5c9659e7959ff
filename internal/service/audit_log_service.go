package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// DefaultAuditPageSize is the page size used when a client does not ask for one.
const DefaultAuditPageSize = 20

// AuditLogPage is one page of the audit log, newest entries first.
type AuditLogPage struct {
	Entries    []*domain.AuditLogEntry
	Window     pagination.Window
	TotalItems int
}

// AuditLogService records and reads the audit log.
type AuditLogService interface {
	// Record stamps and appends one entry. It is called by the task service
	// after a mutation; clients have no write path to the log.
	Record(
		ctx context.Context,
		action domain.AuditAction,
		taskID int64,
		content domain.UpdatedContent,
	) (*domain.AuditLogEntry, error)

	// List returns the requested page of entries. Out-of-range pages and
	// sizes are clamped.
	List(ctx context.Context, requestedPage, pageSize int) (*AuditLogPage, error)
}

// AuditLogServiceOption customizes an AuditLogService.
type AuditLogServiceOption func(*auditLogServiceImpl)

// WithAuditClock sets the clock used to stamp entries.
func WithAuditClock(clock Clock) AuditLogServiceOption {
	return func(s *auditLogServiceImpl) {
		s.clock = clock
	}
}

type auditLogServiceImpl struct {
	entries store.AuditLogStore
	clock   Clock
	logger  *slog.Logger
}

// NewAuditLogService creates an AuditLogService.
// It returns an error if any of the required dependencies are nil.
func NewAuditLogService(
	entries store.AuditLogStore,
	logger *slog.Logger,
	opts ...AuditLogServiceOption,
) (AuditLogService, error) {
	if entries == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "audit log store cannot be nil"}
	}
	if logger == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	s := &auditLogServiceImpl{
		entries: entries,
		clock:   time.Now,
		logger:  logger.With(slog.String("component", "audit_log_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Record implements AuditLogService.
func (s *auditLogServiceImpl) Record(
	ctx context.Context,
	action domain.AuditAction,
	taskID int64,
	content domain.UpdatedContent,
) (*domain.AuditLogEntry, error) {
	entry, err := domain.NewAuditLogEntry(action, taskID, content, stamp(s.clock))
	if err != nil {
		return nil, fmt.Errorf("build audit entry: %w", err)
	}

	if err := s.entries.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append audit entry: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("audit entry recorded",
		slog.String("action", string(action)),
		slog.Int64("task_id", taskID))
	return entry, nil
}

// List implements AuditLogService.
func (s *auditLogServiceImpl) List(ctx context.Context, requestedPage, pageSize int) (*AuditLogPage, error) {
	total, err := s.entries.Count(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_logs", "failed to count audit entries", err)
	}

	window := pagination.Paginate(requestedPage, pageSize, total)
	entries, err := s.entries.List(ctx, window.Offset, window.Limit)
	if err != nil {
		return nil, NewTaskServiceError("list_logs", "failed to list audit entries", err)
	}

	return &AuditLogPage{
		Entries:    entries,
		Window:     window,
		TotalItems: total,
	}, nil
}
