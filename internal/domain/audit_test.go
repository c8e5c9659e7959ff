package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatedContentMarshalJSON(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		content UpdatedContent
		want    string
	}{
		{
			name:    "none is null",
			content: NoContent(),
			want:    `null`,
		},
		{
			name:    "zero value is null",
			content: UpdatedContent{},
			want:    `null`,
		},
		{
			name:    "empty changes is an empty object",
			content: Changes(map[string]string{}),
			want:    `{}`,
		},
		{
			name:    "nil changes is an empty object",
			content: Changes(nil),
			want:    `{}`,
		},
		{
			name:    "changes hold only changed fields",
			content: Changes(map[string]string{"description": "C"}),
			want:    `{"description":"C"}`,
		},
		{
			name: "snapshot holds the full task",
			content: Snapshot(Task{
				ID:          7,
				Title:       "A",
				Description: "B",
				CreatedAt:   createdAt,
			}),
			want: `{"id":7,"title":"A","description":"B","createdAt":"2024-03-01T12:00:00Z"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.content)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestChangesCopiesInput(t *testing.T) {
	t.Parallel()

	input := map[string]string{"title": "A"}
	content := Changes(input)
	input["title"] = "mutated"

	assert.Equal(t, map[string]string{"title": "A"}, content.ChangedFields())
}

func TestDecodeUpdatedContent(t *testing.T) {
	t.Parallel()

	t.Run("null decodes to none for any action", func(t *testing.T) {
		content, err := DecodeUpdatedContent(AuditActionDelete, []byte("null"))
		require.NoError(t, err)
		assert.Equal(t, ContentNone, content.Kind())

		content, err = DecodeUpdatedContent(AuditActionDelete, nil)
		require.NoError(t, err)
		assert.Equal(t, ContentNone, content.Kind())
	})

	t.Run("create decodes a snapshot", func(t *testing.T) {
		raw := []byte(`{"id":2,"title":"A","description":"B","createdAt":"2024-03-01T12:00:00Z"}`)

		content, err := DecodeUpdatedContent(AuditActionCreate, raw)
		require.NoError(t, err)
		require.Equal(t, ContentSnapshot, content.Kind())

		task, ok := content.Task()
		require.True(t, ok)
		assert.Equal(t, int64(2), task.ID)
		assert.Equal(t, "A", task.Title)
	})

	t.Run("update decodes changes", func(t *testing.T) {
		content, err := DecodeUpdatedContent(AuditActionUpdate, []byte(`{"title":"X"}`))
		require.NoError(t, err)
		assert.Equal(t, ContentChanges, content.Kind())
		assert.Equal(t, map[string]string{"title": "X"}, content.ChangedFields())
	})

	t.Run("update with empty object decodes to empty", func(t *testing.T) {
		content, err := DecodeUpdatedContent(AuditActionUpdate, []byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, ContentEmpty, content.Kind())
	})

	t.Run("delete with an object is rejected", func(t *testing.T) {
		_, err := DecodeUpdatedContent(AuditActionDelete, []byte(`{"title":"X"}`))
		assert.Error(t, err)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		_, err := DecodeUpdatedContent(AuditAction("Archive Task"), []byte(`{}`))
		assert.ErrorIs(t, err, ErrInvalidAction)
	})
}

func TestAuditLogEntryValidate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	snapshot := Snapshot(Task{ID: 1, Title: "A", Description: "B", CreatedAt: now})

	tests := []struct {
		name    string
		action  AuditAction
		content UpdatedContent
		wantErr bool
	}{
		{"create with snapshot", AuditActionCreate, snapshot, false},
		{"create without snapshot", AuditActionCreate, NoContent(), true},
		{"create with another task's snapshot", AuditActionCreate, Snapshot(Task{ID: 2, Title: "A", Description: "B"}), true},
		{"update with changes", AuditActionUpdate, Changes(map[string]string{"title": "X"}), false},
		{"update with empty changes", AuditActionUpdate, Changes(nil), false},
		{"update with null", AuditActionUpdate, NoContent(), true},
		{"delete with null", AuditActionDelete, NoContent(), false},
		{"delete with empty changes", AuditActionDelete, Changes(nil), true},
		{"unknown action", AuditAction("Archive Task"), NoContent(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAuditLogEntry(tc.action, 1, tc.content, now)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuditLogEntryJSON(t *testing.T) {
	t.Parallel()

	entry, err := NewAuditLogEntry(
		AuditActionDelete,
		4,
		NoContent(),
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"timestamp":"2024-03-01T12:00:00Z","action":"Delete Task","taskId":4,"updatedContent":null}`,
		string(data))
}
