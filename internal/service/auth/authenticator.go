// Package auth checks the fixed Basic credentials that gate the API.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

// Authenticator checks a username and password pair.
type Authenticator interface {
	// Authenticate returns nil when the pair matches the configured
	// credentials, ErrMissingCredentials for an empty pair and
	// ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, username, password string) error
}

type basicAuthenticator struct {
	username     string
	passwordHash string
	verifier     PasswordVerifier
	logger       *slog.Logger
}

var _ Authenticator = (*basicAuthenticator)(nil)

// NewBasicAuthenticator creates an Authenticator for the configured user.
func NewBasicAuthenticator(
	cfg config.AuthConfig,
	verifier PasswordVerifier,
	logger *slog.Logger,
) (Authenticator, error) {
	if cfg.Username == "" || cfg.PasswordHash == "" {
		return nil, errors.New("auth username and password hash are required")
	}
	if verifier == nil {
		return nil, errors.New("password verifier cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &basicAuthenticator{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		verifier:     verifier,
		logger:       logger.With(slog.String("component", "authenticator")),
	}, nil
}

// Authenticate implements Authenticator. The password is verified even when
// the username is wrong so both failures take the same time.
func (a *basicAuthenticator) Authenticate(ctx context.Context, username, password string) error {
	if username == "" && password == "" {
		return ErrMissingCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passwordErr := a.verifier.Compare(a.passwordHash, password)

	if !usernameOK || passwordErr != nil {
		logger.FromContextOrDefault(ctx, a.logger).Debug("rejected credentials",
			slog.Bool("username_match", usernameOK))
		return ErrInvalidCredentials
	}
	return nil
}
