package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewTask(1, "Write report", "Quarterly numbers", createdAt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.Equal(t, createdAt, task.CreatedAt)
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{
			name:    "valid",
			task:    Task{ID: 3, Title: "a", Description: "b"},
			wantErr: nil,
		},
		{
			name:    "zero id",
			task:    Task{ID: 0, Title: "a", Description: "b"},
			wantErr: ErrInvalidID,
		},
		{
			name:    "empty title",
			task:    Task{ID: 1, Title: "", Description: "b"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			task:    Task{ID: 1, Title: strings.Repeat("x", MaxTitleLength+1), Description: "b"},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "title at limit counted in runes",
			task:    Task{ID: 1, Title: strings.Repeat("é", MaxTitleLength), Description: "b"},
			wantErr: nil,
		},
		{
			name:    "empty description",
			task:    Task{ID: 1, Title: "a", Description: ""},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "description too long",
			task:    Task{ID: 1, Title: "a", Description: strings.Repeat("x", MaxDescriptionLength+1)},
			wantErr: ErrDescriptionTooLong,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, errors.Is(err, ErrValidation), "validation errors should match ErrValidation")
		})
	}
}

func TestTaskDiff(t *testing.T) {
	t.Parallel()

	t.Run("only changed fields are returned", func(t *testing.T) {
		task := &Task{ID: 1, Title: "A", Description: "B"}

		changes := task.Diff("A", "C")

		assert.Equal(t, map[string]string{"description": "C"}, changes)
		assert.Equal(t, "A", task.Title)
		assert.Equal(t, "C", task.Description)
	})

	t.Run("identical values produce no changes", func(t *testing.T) {
		task := &Task{ID: 1, Title: "A", Description: "B"}

		changes := task.Diff("A", "B")

		assert.Empty(t, changes)
	})

	t.Run("both fields changed", func(t *testing.T) {
		task := &Task{ID: 1, Title: "A", Description: "B"}

		changes := task.Diff("X", "Y")

		assert.Equal(t, map[string]string{"title": "X", "description": "Y"}, changes)
	})
}
