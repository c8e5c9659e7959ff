package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps each one to an
// HTTP status code.
var (
	// ErrInvalidIdentifier indicates a task id that is not a base-10 integer.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidIdentifier = errors.New("invalid task identifier")

	// ErrTaskNotFound indicates that no task has the requested id.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAuditWriteFailed indicates the mutation was applied but its audit
	// entry could not be written. The mutation is not rolled back.
	ErrAuditWriteFailed = errors.New("audit entry not written")
)

// TaskServiceError wraps errors from the task and audit services with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "list_logs")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	if errors.Is(err, ErrInvalidIdentifier) {
		return ErrInvalidIdentifier
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
