package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// AuditLogStore defines the interface for audit log persistence.
// The log is append-only: there is no update or delete.
type AuditLogStore interface {
	// Append writes a new entry.
	// Returns ErrInvalidEntity if the entry fails validation.
	Append(ctx context.Context, entry *domain.AuditLogEntry) error

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// List returns at most limit entries ordered by timestamp, most recent
	// first, skipping the first offset entries. Entries sharing a timestamp
	// are returned newest insert first.
	List(ctx context.Context, offset, limit int) ([]*domain.AuditLogEntry, error)
}
