package store

import (
	"context"
	"fmt"

	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnectSQLite opens a SQLite database (file or in-memory DSN). The pool
// is limited to one connection so that in-memory databases are shared and
// writes are serialized.
func NewConnectSQLite(ctx context.Context, cfg config.DB, observer QueryObserver, log *logger.Logger) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(cfg.DSN), gormConfig(log))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// ping database
	if err = sqlDB.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = sqlDB.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(gdb, migrations.DialectSQLite, observer, log), nil
}
