package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *MutationEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *MutationEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestNewMutationEvent(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	first := NewMutationEvent(domain.AuditActionUpdate, 7, false, at)
	second := NewMutationEvent(domain.AuditActionUpdate, 7, false, at)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.AuditActionUpdate, first.Action)
	assert.Equal(t, int64(7), first.TaskID)
	assert.False(t, first.Audited)
	assert.Equal(t, at, first.OccurredAt)
}
