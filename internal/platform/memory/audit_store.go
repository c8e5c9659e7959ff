package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// AuditLogStore keeps audit entries in insertion order.
type AuditLogStore struct {
	mu      sync.RWMutex
	entries []domain.AuditLogEntry
}

var _ store.AuditLogStore = (*AuditLogStore)(nil)

// NewAuditLogStore returns an empty AuditLogStore.
func NewAuditLogStore() *AuditLogStore {
	return &AuditLogStore{}
}

// Append implements store.AuditLogStore.
func (s *AuditLogStore) Append(_ context.Context, entry *domain.AuditLogEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

// Count implements store.AuditLogStore.
func (s *AuditLogStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// List implements store.AuditLogStore.
func (s *AuditLogStore) List(_ context.Context, offset, limit int) ([]*domain.AuditLogEntry, error) {
	s.mu.RLock()
	ordered := make([]domain.AuditLogEntry, len(s.entries))
	copy(ordered, s.entries)
	s.mu.RUnlock()

	// Reverse first so the stable sort leaves later inserts ahead on ties.
	slices.Reverse(ordered)
	slices.SortStableFunc(ordered, func(a, b domain.AuditLogEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	offset = max(offset, 0)
	if offset >= len(ordered) || limit <= 0 {
		return []*domain.AuditLogEntry{}, nil
	}
	end := min(offset+limit, len(ordered))

	result := make([]*domain.AuditLogEntry, 0, end-offset)
	for _, entry := range ordered[offset:end] {
		entry := entry
		result = append(result, &entry)
	}
	return result, nil
}
