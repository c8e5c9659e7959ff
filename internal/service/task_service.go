package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/search"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/sethvargo/go-retry"
)

const (
	// TaskPageSize is the fixed number of tasks per listing page.
	TaskPageSize = 5

	defaultIDRetries    = 5
	defaultIDRetryDelay = 5 * time.Millisecond
)

// TaskPage is one page of tasks in ascending id order.
type TaskPage struct {
	Tasks      []*domain.Task
	Window     pagination.Window
	TotalItems int
}

// TaskService provides task-related operations.
// Title and description arrive already sanitized and validated.
type TaskService interface {
	// List returns the requested page of tasks whose title or description
	// contains the sanitized search text, case-insensitively.
	List(ctx context.Context, rawSearch string, requestedPage int) (*TaskPage, error)

	// Create stores a task under the next free id and audits a snapshot of it.
	Create(ctx context.Context, title, description string) (*domain.Task, error)

	// Update applies whichever of title and description differ from the
	// stored values and audits only those fields.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, title, description string) (*domain.Task, error)

	// Delete removes a task and audits the removal.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}

// ParseTaskID parses a task id from its path form.
// Returns ErrInvalidIdentifier unless raw is a base-10 integer.
func ParseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return id, nil
}

// TaskServiceOption customizes a TaskService.
type TaskServiceOption func(*taskServiceImpl)

// WithTaskClock sets the clock used to stamp new tasks and mutation events.
func WithTaskClock(clock Clock) TaskServiceOption {
	return func(s *taskServiceImpl) {
		s.clock = clock
	}
}

// WithIDRetries bounds how many times Create re-reads the highest id after
// losing an id to a concurrent create, and how long it waits between tries.
func WithIDRetries(retries uint64, delay time.Duration) TaskServiceOption {
	return func(s *taskServiceImpl) {
		s.idRetries = retries
		if delay > 0 {
			s.idRetryDelay = delay
		}
	}
}

type taskServiceImpl struct {
	tasks        store.TaskStore
	audit        AuditLogService
	eventEmitter events.EventEmitter
	clock        Clock
	idRetries    uint64
	idRetryDelay time.Duration
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	audit AuditLogService,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
	opts ...TaskServiceOption,
) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "task store cannot be nil"}
	}
	if audit == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "audit log service cannot be nil"}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "eventEmitter cannot be nil"}
	}
	if logger == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	s := &taskServiceImpl{
		tasks:        tasks,
		audit:        audit,
		eventEmitter: eventEmitter,
		clock:        time.Now,
		idRetries:    defaultIDRetries,
		idRetryDelay: defaultIDRetryDelay,
		logger:       logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List implements TaskService.
func (s *taskServiceImpl) List(ctx context.Context, rawSearch string, requestedPage int) (*TaskPage, error) {
	filter := search.BuildFilter(rawSearch)

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to count tasks", err)
	}

	window := pagination.Paginate(requestedPage, TaskPageSize, total)
	tasks, err := s.tasks.List(ctx, filter, window.Offset, window.Limit)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	return &TaskPage{
		Tasks:      tasks,
		Window:     window,
		TotalItems: total,
	}, nil
}

// Create implements TaskService.
func (s *taskServiceImpl) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	createdAt := stamp(s.clock)

	var created *domain.Task
	backoff := retry.WithMaxRetries(s.idRetries, retry.NewConstant(s.idRetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		highest, err := s.tasks.MaxID(ctx)
		if err != nil {
			return err
		}

		task, err := domain.NewTask(highest+1, title, description, createdAt)
		if err != nil {
			return err
		}

		if err := s.tasks.Create(ctx, task); err != nil {
			if store.IsDuplicateError(err) {
				log.Debug("task id taken by a concurrent create, retrying",
					slog.Int64("task_id", task.ID))
				return retry.RetryableError(err)
			}
			return err
		}

		created = task
		return nil
	})
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	if err := s.recordMutation(ctx, domain.AuditActionCreate, created.ID, domain.Snapshot(*created)); err != nil {
		return created, NewTaskServiceError("create_task", "task created without audit entry", err)
	}

	log.Info("task created", slog.Int64("task_id", created.ID))
	return created, nil
}

// Update implements TaskService.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, title, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to load task for update",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("update_task", "failed to load task", err)
	}

	changes := task.Diff(title, description)
	if err := s.tasks.Update(ctx, task); err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	if err := s.recordMutation(ctx, domain.AuditActionUpdate, id, domain.Changes(changes)); err != nil {
		return task, NewTaskServiceError("update_task", "task updated without audit entry", err)
	}

	log.Info("task updated",
		slog.Int64("task_id", id),
		slog.Int("changed_fields", len(changes)))
	return task, nil
}

// Delete implements TaskService.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	if err := s.recordMutation(ctx, domain.AuditActionDelete, id, domain.NoContent()); err != nil {
		return NewTaskServiceError("delete_task", "task deleted without audit entry", err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// recordMutation writes the audit entry for an applied mutation and emits
// the matching event. A failed audit write is returned wrapped in
// ErrAuditWriteFailed; a failed emit is only logged.
func (s *taskServiceImpl) recordMutation(
	ctx context.Context,
	action domain.AuditAction,
	taskID int64,
	content domain.UpdatedContent,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var auditErr error
	if _, err := s.audit.Record(ctx, action, taskID, content); err != nil {
		log.Error("mutation applied without audit entry",
			slog.String("error", err.Error()),
			slog.String("action", string(action)),
			slog.Int64("task_id", taskID))
		auditErr = fmt.Errorf("%w: %w", ErrAuditWriteFailed, err)
	}

	event := events.NewMutationEvent(action, taskID, auditErr == nil, stamp(s.clock))
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit mutation event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()),
			slog.String("action", string(action)))
	}

	return auditErr
}
