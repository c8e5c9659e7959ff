package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every method is a single atomic operation against the task collection;
// the store does not interpret field semantics beyond the shape enforced by
// domain.Task.Validate.
type TaskStore interface {
	// Count returns the number of tasks matching the filter.
	Count(ctx context.Context, filter TaskFilter) (int, error)

	// List returns at most limit tasks matching the filter, ordered by
	// ascending id, skipping the first offset matches.
	List(ctx context.Context, filter TaskFilter, offset, limit int) ([]*domain.Task, error)

	// GetByID retrieves a task by its logical id.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// MaxID returns the highest id currently stored, or 0 when the store is empty.
	MaxID(ctx context.Context) (int64, error)

	// Create inserts a new task.
	// Returns ErrTaskIDConflict if a task with the same id already exists,
	// and ErrInvalidEntity if the task fails validation.
	Create(ctx context.Context, task *domain.Task) error

	// Update overwrites the title and description of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by id.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
