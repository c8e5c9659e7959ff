package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskDeletedMessage confirms a successful delete.
const TaskDeletedMessage = "Task deleted successfully."

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
// Query parameters: page (default 1) and search (default empty).
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	page := pagination.ParseQueryInt(query.Get("page"), 1)

	result, err := h.taskService.List(r.Context(), query.Get("search"), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("listed tasks",
		slog.Int("page", result.Window.CurrentPage),
		slog.Int("total_items", result.TotalItems))

	shared.RespondWithJSON(w, r, http.StatusOK, PageResponse[TaskResponse]{
		Data:       tasksToResponse(result.Tasks),
		Pagination: result.Window.Meta(result.TotalItems),
	})
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTaskRequest(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, DataResponse[TaskResponse]{Data: taskToResponse(task)})
}

// UpdateTask handles PUT /tasks/{id} requests.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	req, err := decodeTaskRequest(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.Update(r.Context(), id, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse[TaskResponse]{Data: taskToResponse(task)})
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: TaskDeletedMessage})
}
