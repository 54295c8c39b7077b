package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error classes reported by [ErrorClassifier].
const (
	ClassUniqueViolation      = "unique_violation"
	ClassConstraint           = "constraint"
	ClassSerializationFailure = "serialization_failure"
	ClassDeadlock             = "deadlock"
	ClassQueryCanceled        = "query_canceled"
	ClassConnection           = "connection"
	ClassTimeout              = "timeout"
	ClassCanceled             = "canceled"
	ClassUnknown              = "unknown"
)

// ErrorClassifier implements [ErrorClassificator] for both supported
// dialects. A missing row is not an error class: it is a regular outcome of
// a lookup.
type ErrorClassifier struct{}

// NewErrorClassifier constructs an [ErrorClassifier] ready for use.
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *ErrorClassifier) Classify(err error) string {
	switch {
	case err == nil, errors.Is(err, gorm.ErrRecordNotFound):
		return ""
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ClassUniqueViolation
	case errors.Is(err, context.DeadlineExceeded):
		return ClassTimeout
	case errors.Is(err, context.Canceled):
		return ClassCanceled
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if isSQLiteUniqueViolation(err) {
		return ClassUniqueViolation
	}

	return ClassUnknown
}

// ClassifyPgError maps a *pgconn.PgError to an error class based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) string {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	// Class 23: integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation:
		return ClassConstraint

	// Class 40: transaction rollback
	case pgerrcode.SerializationFailure:
		return ClassSerializationFailure
	case pgerrcode.DeadlockDetected:
		return ClassDeadlock

	// Class 57: operator intervention
	case pgerrcode.QueryCanceled:
		return ClassQueryCanceled

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return ClassConnection
	}

	return "pg_" + pgErr.Code
}

// isUniqueViolation reports whether err comes from the unique index on
// users.email, whichever dialect produced it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	return isSQLiteUniqueViolation(err)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isSQLiteUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
