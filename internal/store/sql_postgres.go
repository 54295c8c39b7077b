package store

import (
	"context"
	"fmt"
	"time"

	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnectPostgres opens a pooled PostgreSQL connection through the pgx
// driver and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, observer QueryObserver, log *logger.Logger) (*DB, error) {
	// establish connection
	gdb, err := gorm.Open(postgres.New(postgres.Config{DSN: cfg.DSN}), gormConfig(log))
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	// setup connections
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	// ping database
	if err = sqlDB.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(gdb, migrations.DialectPostgres, observer, log), nil
}
