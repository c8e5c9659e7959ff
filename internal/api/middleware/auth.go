package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

const (
	// UnauthorizedMessage is returned for every rejected request.
	UnauthorizedMessage = "Unauthorized access. Please provide valid credentials."

	authRealm = `Basic realm="taskboard", charset="UTF-8"`
)

// AuthMiddleware provides HTTP Basic authentication for routes.
type AuthMiddleware struct {
	authenticator auth.Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

// Authenticate checks the Basic credentials in the Authorization header and
// rejects the request with 401 unless they match.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			m.reject(w, r, auth.ErrMissingCredentials)
			return
		}

		if err := m.authenticator.Authenticate(r.Context(), username, password); err != nil {
			m.reject(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, auth.ErrMissingCredentials) && !errors.Is(err, auth.ErrInvalidCredentials) {
		logger.FromContext(r.Context()).Error("failed to check credentials",
			slog.String("error", redact.Error(err)))
	}

	w.Header().Set("WWW-Authenticate", authRealm)
	shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage)
}
