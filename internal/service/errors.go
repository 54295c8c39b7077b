package service

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenRequired       = errors.New("token required")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPasswordHashing = errors.New("password hashing failed")
	ErrNotReady        = errors.New("service is not ready")
)
