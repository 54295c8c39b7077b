package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listen port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDriver indicates a database driver other than postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrMissingSecretKey indicates that no token signing key was provided.
	ErrMissingSecretKey = errors.New("token secret key is required")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside the accepted range.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
)
