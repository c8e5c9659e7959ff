package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AuditAction names the kind of mutation an audit entry records.
type AuditAction string

// The closed set of audit actions.
const (
	AuditActionCreate AuditAction = "Create Task"
	AuditActionUpdate AuditAction = "Update Task"
	AuditActionDelete AuditAction = "Delete Task"
)

// Valid reports whether the action belongs to the closed set.
func (a AuditAction) Valid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	default:
		return false
	}
}

// ContentKind discriminates the variants of UpdatedContent.
type ContentKind int

// UpdatedContent variants.
const (
	// ContentNone carries nothing; serialized as null. Used for deletes.
	ContentNone ContentKind = iota
	// ContentEmpty is an update that changed no fields; serialized as {}.
	ContentEmpty
	// ContentChanges maps changed field names to their new values.
	ContentChanges
	// ContentSnapshot holds the full task as created.
	ContentSnapshot
)

// String returns a readable name for the kind.
func (k ContentKind) String() string {
	switch k {
	case ContentNone:
		return "none"
	case ContentEmpty:
		return "empty"
	case ContentChanges:
		return "changes"
	case ContentSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("ContentKind(%d)", int(k))
	}
}

// UpdatedContent is the payload of an audit entry. The zero value is ContentNone.
type UpdatedContent struct {
	kind     ContentKind
	changes  map[string]string
	snapshot *Task
}

// NoContent returns the null payload recorded for deletions.
func NoContent() UpdatedContent {
	return UpdatedContent{kind: ContentNone}
}

// Changes returns a payload holding the given field changes. An empty or nil
// map yields ContentEmpty so that a no-op update still serializes as {}.
func Changes(changes map[string]string) UpdatedContent {
	if len(changes) == 0 {
		return UpdatedContent{kind: ContentEmpty}
	}

	copied := make(map[string]string, len(changes))
	for field, value := range changes {
		copied[field] = value
	}

	return UpdatedContent{kind: ContentChanges, changes: copied}
}

// Snapshot returns a payload holding a copy of the full task.
func Snapshot(task Task) UpdatedContent {
	return UpdatedContent{kind: ContentSnapshot, snapshot: &task}
}

// Kind reports which variant the payload holds.
func (c UpdatedContent) Kind() ContentKind {
	return c.kind
}

// ChangedFields returns a copy of the changed fields. It is empty for every
// kind other than ContentChanges.
func (c UpdatedContent) ChangedFields() map[string]string {
	fields := make(map[string]string, len(c.changes))
	for field, value := range c.changes {
		fields[field] = value
	}
	return fields
}

// Task returns the snapshot for ContentSnapshot payloads.
func (c UpdatedContent) Task() (Task, bool) {
	if c.kind != ContentSnapshot || c.snapshot == nil {
		return Task{}, false
	}
	return *c.snapshot, true
}

// MarshalJSON renders the variant as null, {}, a field map or the task object.
func (c UpdatedContent) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ContentNone:
		return []byte("null"), nil
	case ContentEmpty:
		return []byte("{}"), nil
	case ContentChanges:
		return json.Marshal(c.changes)
	case ContentSnapshot:
		if c.snapshot == nil {
			return nil, fmt.Errorf("snapshot content without task")
		}
		return json.Marshal(c.snapshot)
	default:
		return nil, fmt.Errorf("unknown content kind %d", int(c.kind))
	}
}

// DecodeUpdatedContent rebuilds the variant from its JSON form. The action
// decides how a non-null object is read: creates hold a snapshot, updates hold
// field changes.
func DecodeUpdatedContent(action AuditAction, raw []byte) (UpdatedContent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return NoContent(), nil
	}

	switch action {
	case AuditActionCreate:
		var task Task
		if err := json.Unmarshal(trimmed, &task); err != nil {
			return UpdatedContent{}, fmt.Errorf("decode snapshot content: %w", err)
		}
		return Snapshot(task), nil
	case AuditActionUpdate:
		var changes map[string]string
		if err := json.Unmarshal(trimmed, &changes); err != nil {
			return UpdatedContent{}, fmt.Errorf("decode change content: %w", err)
		}
		return Changes(changes), nil
	case AuditActionDelete:
		return UpdatedContent{}, fmt.Errorf("delete entries carry no content, got %s", trimmed)
	default:
		return UpdatedContent{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

// AuditLogEntry is the immutable record of one mutation against a task.
// TaskID is a weak reference; the task may have been deleted since.
type AuditLogEntry struct {
	Timestamp      time.Time      `json:"timestamp"`
	Action         AuditAction    `json:"action"`
	TaskID         int64          `json:"taskId"`
	UpdatedContent UpdatedContent `json:"updatedContent"`
}

// NewAuditLogEntry builds a validated entry.
func NewAuditLogEntry(
	action AuditAction,
	taskID int64,
	content UpdatedContent,
	timestamp time.Time,
) (*AuditLogEntry, error) {
	entry := &AuditLogEntry{
		Timestamp:      timestamp,
		Action:         action,
		TaskID:         taskID,
		UpdatedContent: content,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks the action is known and that the content variant matches it.
// A create entry must carry the snapshot of its own task.
func (e *AuditLogEntry) Validate() error {
	if !e.Action.Valid() {
		return NewValidationError("action", "is not a known audit action", ErrInvalidAction)
	}

	if e.TaskID < 1 {
		return NewValidationError("taskId", "must be a positive integer", ErrInvalidID)
	}

	kind := e.UpdatedContent.Kind()
	switch e.Action {
	case AuditActionCreate:
		task, ok := e.UpdatedContent.Task()
		if !ok {
			return NewValidationError("updatedContent", "create entries require a snapshot", ErrValidation)
		}
		if task.ID != e.TaskID {
			return NewValidationError("updatedContent", "snapshot describes another task", ErrValidation)
		}
	case AuditActionUpdate:
		if kind != ContentChanges && kind != ContentEmpty {
			return NewValidationError("updatedContent", "update entries require a change set", ErrValidation)
		}
	case AuditActionDelete:
		if kind != ContentNone {
			return NewValidationError("updatedContent", "delete entries carry no content", ErrValidation)
		}
	}

	return nil
}
