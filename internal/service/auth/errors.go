package auth

import "errors"

// Common authentication errors
var (
	// ErrMissingCredentials indicates the request carried no usable Basic credentials
	ErrMissingCredentials = errors.New("authentication credentials are missing")

	// ErrInvalidCredentials indicates the username or password did not match
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
)
