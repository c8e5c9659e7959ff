package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// MutationEvent reports a successful change to a task. It is emitted after
// the change is stored, whether or not its audit entry could be written.
type MutationEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Action is the kind of mutation, using the audit log vocabulary
	Action domain.AuditAction `json:"action"`

	// TaskID is the logical id of the task that changed
	TaskID int64 `json:"taskId"`

	// Audited is false when the audit entry for this mutation failed to write
	Audited bool `json:"audited"`

	// OccurredAt is when the mutation was applied
	OccurredAt time.Time `json:"occurredAt"`
}

// NewMutationEvent creates a MutationEvent with a fresh id.
func NewMutationEvent(action domain.AuditAction, taskID int64, audited bool, occurredAt time.Time) *MutationEvent {
	return &MutationEvent{
		ID:         uuid.New(),
		Action:     action,
		TaskID:     taskID,
		Audited:    audited,
		OccurredAt: occurredAt,
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *MutationEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *MutationEvent) error
}
