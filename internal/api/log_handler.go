package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// LogHandler serves the read-only audit log.
type LogHandler struct {
	auditService service.AuditLogService
	logger       *slog.Logger
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(auditService service.AuditLogService, logger *slog.Logger) *LogHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LogHandler")
	}

	return &LogHandler{
		auditService: auditService,
		logger:       logger.With(slog.String("component", "log_handler")),
	}
}

// ListLogs handles GET /logs requests, newest entries first.
// Query parameters: page (default 1) and limit (default 20).
func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	page := pagination.ParseQueryInt(query.Get("page"), 1)
	limit := pagination.ParseQueryInt(query.Get("limit"), service.DefaultAuditPageSize)

	result, err := h.auditService.List(r.Context(), page, limit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("listed audit log",
		slog.Int("page", result.Window.CurrentPage),
		slog.Int("page_size", result.Window.Limit))

	shared.RespondWithJSON(w, r, http.StatusOK, PageResponse[AuditLogEntryResponse]{
		Data:       auditEntriesToResponse(result.Entries),
		Pagination: result.Window.Meta(result.TotalItems),
	})
}
