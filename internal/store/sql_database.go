package store

import (
	"context"
	"fmt"
	"time"

	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/migrations"
	"gorm.io/gorm"
)

// DB wraps the gorm handle together with the dialect-specific pieces the
// repositories need: the migration dialect, the error classifier and the
// optional query observer.
type DB struct {
	*gorm.DB
	dialect            string
	errorClassificator ErrorClassificator
	observer           QueryObserver
	logger             *logger.Logger
}

func newDB(gdb *gorm.DB, dialect string, observer QueryObserver, log *logger.Logger) *DB {
	return &DB{
		DB:                 gdb,
		dialect:            dialect,
		errorClassificator: NewErrorClassifier(),
		observer:           observer,
		logger:             log,
	}
}

// gormConfig is shared by every dialect. Unique violations surface as
// gorm.ErrDuplicatedKey and single statements run without an implicit
// transaction.
func gormConfig(log *logger.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 newGormLogger(log),
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting sql.DB: %w", err)
	}

	if err := migrations.Migrate(ctx, sqlDB, db.dialect); err != nil {
		return err
	}

	db.logger.Info().Str("dialect", db.dialect).Msg("migrations applied")
	return nil
}

// Ping verifies that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting sql.DB: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting sql.DB: %w", err)
	}

	return sqlDB.Close()
}

// observe runs fn against a context-bound session and reports the outcome to
// the query observer.
func (db *DB) observe(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	start := time.Now()
	err := fn(db.WithContext(ctx))

	if db.observer != nil {
		db.observer.ObserveQuery(op, db.errorClassificator.Classify(err), time.Since(start))
	}

	return err
}
