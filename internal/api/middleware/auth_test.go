package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	username string
	password string
}

func (s stubAuthenticator) Authenticate(_ context.Context, username, password string) error {
	if username == "" && password == "" {
		return auth.ErrMissingCredentials
	}
	if username != s.username || password != s.password {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(stubAuthenticator{username: "admin", password: "s3cret"})
	protected := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	tests := []struct {
		name       string
		setAuth    func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "no header",
			setAuth:    func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer scheme",
			setAuth:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong password",
			setAuth:    func(r *http.Request) { r.SetBasicAuth("admin", "guess") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid credentials",
			setAuth:    func(r *http.Request) { r.SetBasicAuth("admin", "s3cret") },
			wantStatus: http.StatusTeapot,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			tc.setAuth(r)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, authRealm, w.Header().Get("WWW-Authenticate"))
				assert.Contains(t, w.Body.String(), UnauthorizedMessage)
			}
		})
	}
}
