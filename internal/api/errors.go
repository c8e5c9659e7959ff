package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Client-facing error messages.
const (
	MsgInvalidIdentifier = "Invalid task identifier."
	MsgTaskNotFound      = "Task not found."
	MsgInvalidJSON       = "Invalid JSON payload."
	MsgInvalidTask       = "Invalid task data."
	MsgResourceNotFound  = "Resource not found."
	MsgUnexpected        = "An unexpected error occurred. Please try again later."
)

// ErrInvalidJSON indicates a request body that is not a JSON object.
var ErrInvalidJSON = errors.New("invalid JSON payload")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var reqErr *RequestValidationError

	switch {
	// An applied but unaudited mutation is a server fault whatever the
	// audit store wrapped.
	case errors.Is(err, service.ErrAuditWriteFailed):
		return http.StatusInternalServerError

	case errors.As(err, &reqErr),
		errors.Is(err, ErrInvalidJSON),
		errors.Is(err, service.ErrInvalidIdentifier):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. Only messages
// written for clients are returned; everything else becomes MsgUnexpected.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var reqErr *RequestValidationError

	switch {
	case errors.Is(err, service.ErrAuditWriteFailed):
		return MsgUnexpected
	case errors.As(err, &reqErr):
		return reqErr.Error()
	case errors.Is(err, ErrInvalidJSON):
		return MsgInvalidJSON
	case errors.Is(err, service.ErrInvalidIdentifier):
		return MsgInvalidIdentifier
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidTask
	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the error response for err and logs its cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
