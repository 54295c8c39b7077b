package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/werlleyg/boilerplate-api/models"
)

// AuthService authenticates users and manages session tokens.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (models.Session, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService implements the user account use cases.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Show(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, id string) error

	// EnsureAdmin creates an admin account with the given credentials unless
	// the email is already registered. created reports whether a row was added.
	EnsureAdmin(ctx context.Context, name, email, password string) (created bool, err error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppVersion
}

// HealthService reports whether the service can handle traffic.
type HealthService interface {
	Ready(ctx context.Context) error
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// Pinger is implemented by storage backends that can check their connection.
type Pinger interface {
	Ping(ctx context.Context) error
}
