package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/werlleyg/boilerplate-api/models"
)

// UserRepository persists [models.User] records.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

// QueryObserver receives the outcome of every logical database operation.
// class is empty on success.
type QueryObserver interface {
	ObserveQuery(op, class string, elapsed time.Duration)
}

// ErrorClassificator maps a database error to a short, low-cardinality label.
type ErrorClassificator interface {
	Classify(err error) string
}
