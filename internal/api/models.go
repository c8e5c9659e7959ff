package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// TaskRequest is the body of create and update requests.
//
// Fields that are missing or hold a non-string JSON value decode as empty
// strings and are then rejected as required.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

// UnmarshalJSON accepts any JSON object.
func (t *TaskRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Title, _ = raw["title"].(string)
	t.Description, _ = raw["description"].(string)
	return nil
}

// TaskResponse is the JSON form of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuditLogEntryResponse is the JSON form of an audit entry.
type AuditLogEntryResponse struct {
	Timestamp      time.Time             `json:"timestamp"`
	Action         domain.AuditAction    `json:"action"`
	TaskID         int64                 `json:"taskId"`
	UpdatedContent domain.UpdatedContent `json:"updatedContent"`
}

// DataResponse wraps a single resource.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// PageResponse wraps one page of a listing.
type PageResponse[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

func auditEntriesToResponse(entries []*domain.AuditLogEntry) []AuditLogEntryResponse {
	out := make([]AuditLogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, AuditLogEntryResponse{
			Timestamp:      entry.Timestamp,
			Action:         entry.Action,
			TaskID:         entry.TaskID,
			UpdatedContent: entry.UpdatedContent,
		})
	}
	return out
}
