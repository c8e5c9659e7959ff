package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/sanitize"
)

// RequestValidationError lists every problem found in a task request, in
// field order. Its message is safe to return to clients.
type RequestValidationError struct {
	Messages []string
}

// Error joins the messages with single spaces.
func (e *RequestValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// fieldMessages holds the client message for each field and failed tag.
var fieldMessages = map[string]map[string]string{
	"Title": {
		"required": "Title is required.",
		"max":      "Title must be 100 characters or fewer.",
	},
	"Description": {
		"required": "Description is required.",
		"max":      "Description must be 500 characters or fewer.",
	},
}

// decodeTaskRequest reads, sanitizes and validates a task body. On success
// both fields are markup-free, trimmed and within their length limits.
// An empty body is treated as an empty object.
func decodeTaskRequest(r *http.Request) (*TaskRequest, error) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	req.Title = sanitize.Text(req.Title)
	req.Description = sanitize.Text(req.Description)

	if err := shared.ValidateRequest(&req); err != nil {
		return nil, toRequestValidationError(err)
	}
	return &req, nil
}

func toRequestValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid.", fe.Field())
		}
		messages = append(messages, msg)
	}
	return &RequestValidationError{Messages: messages}
}
