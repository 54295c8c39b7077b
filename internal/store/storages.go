package store

import (
	"context"
	"fmt"

	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
)

// Storages aggregates the repositories built on one database connection.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}
}

// Connect opens the database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, observer QueryObserver, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, observer, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, observer, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, cfg.Driver)
	}
}
