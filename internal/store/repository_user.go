package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/models"
	"gorm.io/gorm"
)

// userRepository is the gorm-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every user ordered by creation time.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users := make([]models.User, 0)
	err := r.db.observe(ctx, "users.list", func(tx *gorm.DB) error {
		return tx.Order("created_at ASC").Order("id ASC").Find(&users).Error
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	return users, nil
}

// FindByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "users.find_by_id", "id = ?", id)
}

// FindByEmail returns the user registered with email or [ErrUserNotFound].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "users.find_by_email", "email = ?", email)
}

func (r *userRepository) findOne(ctx context.Context, op, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.observe(ctx, op, func(tx *gorm.DB) error {
		return tx.Where(query, arg).Take(&user).Error
	})

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.findOne").Str("op", op).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}
}

// Create inserts user and returns it with the timestamps assigned by the ORM.
//
// Error handling:
//   - unique index violation on email → [ErrEmailAlreadyRegistered].
//   - any other driver-level error → wrapped [ErrUnexpectedDB].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.observe(ctx, "users.create", func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyRegistered
		}

		log.Err(err).Str("func", "*userRepository.Create").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	return user, nil
}

// Update writes the mutable columns (name, email, role) of user.
//
// Error handling:
//   - no row with user.ID → [ErrUserNotFound].
//   - unique index violation on email → [ErrEmailAlreadyRegistered].
//   - any other driver-level error → wrapped [ErrUnexpectedDB].
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.db.NowFunc()

	var affected int64
	err := r.db.observe(ctx, "users.update", func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]any{
				"name":       user.Name,
				"email":      user.Email,
				"role":       user.Role,
				"updated_at": user.UpdatedAt,
			})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyRegistered
		}

		log.Err(err).Str("func", "*userRepository.Update").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// Delete removes the user row permanently.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.observe(ctx, "users.delete", func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.User{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
