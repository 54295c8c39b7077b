// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed client for the accounts HTTP API.
//
// [AccountsClient] hides the route layout and the error envelope of the
// service. Non-2xx responses are returned as [*APIError] values that wrap
// the sentinels in errors.go, so callers can use [errors.Is] (for example
// [ErrNotFound] for 404 or [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/werlleyg/boilerplate-api/models"
)

// AccountsClient talks to a running accounts service.
type AccountsClient interface {
	// SetToken stores the bearer token attached to every protected request.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login opens a session. On success the returned token is stored via
	// SetToken.
	Login(ctx context.Context, req models.AuthenticateRequest) (models.SessionResponse, error)

	// CreateUser registers a new account. It needs no token.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error)

	ListUsers(ctx context.Context) ([]models.UserResponse, error)
	GetUser(ctx context.Context, id string) (models.UserResponse, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error

	// Version returns the build metadata of the server.
	Version(ctx context.Context) (models.AppVersion, error)

	// Ready returns nil when the server reports it can serve traffic.
	Ready(ctx context.Context) error
}
