package domain

import (
	"time"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the maximum number of characters allowed in a task title.
	MaxTitleLength = 100

	// MaxDescriptionLength is the maximum number of characters allowed in a task description.
	MaxDescriptionLength = 500
)

// Task is a single tracked unit of work.
//
// ID is the logical identifier exposed to clients. It is assigned once at
// creation and never changes; storage engines may keep their own internal keys
// but those never leave the store.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask builds a validated Task.
func NewTask(id int64, title, description string, createdAt time.Time) (*Task, error) {
	task := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   createdAt,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the shape a task must have to be stored. Length limits are
// counted in characters, not bytes.
func (t *Task) Validate() error {
	if t.ID < 1 {
		return NewValidationError("id", "must be a positive integer", ErrInvalidID)
	}

	if t.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return NewValidationError("title", "exceeds maximum length", ErrTitleTooLong)
	}

	if t.Description == "" {
		return NewValidationError("description", "is required", ErrEmptyDescription)
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		return NewValidationError("description", "exceeds maximum length", ErrDescriptionTooLong)
	}

	return nil
}

// Diff applies title and description to the task, returning only the fields
// whose value actually changed, keyed by their JSON field name.
func (t *Task) Diff(title, description string) map[string]string {
	changes := make(map[string]string)

	if title != t.Title {
		changes["title"] = title
		t.Title = title
	}

	if description != t.Description {
		changes["description"] = description
		t.Description = description
	}

	return changes
}
