package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/werlleyg/boilerplate-api/internal/crypto"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/store"
	"github.com/werlleyg/boilerplate-api/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	ids            IDGenerator

	logger *logger.Logger
}

// NewUserService constructs a UserService. New accounts get ids from ids and
// password digests from hasher.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            ids,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// Show returns the user with id or store.ErrUserNotFound.
func (s *userService) Show(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Create registers a new account.
//
// The email must not be registered yet (store.ErrEmailAlreadyRegistered).
// The role is admin only when req.IsAdmin is explicitly true.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := s.userRepository.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", req.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	role := models.RoleGuest
	if req.IsAdmin != nil {
		role = models.RoleFromAdminFlag(*req.IsAdmin)
	}

	return s.create(ctx, req.Name, req.Email, req.Password, role)
}

func (s *userService) create(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user, err := s.userRepository.Create(ctx, models.User{
		ID:           s.ids.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	return user, nil
}

// Update applies the optional fields of req to the stored user.
//
// Role resolution:
//   - is_admin true → admin
//   - is_admin false or null → guest
//   - is_admin omitted → admin stays admin, anyone else becomes guest
func (s *userService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.Role = resolveRole(user.Role, req.IsAdmin)

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

func resolveRole(current models.Role, isAdmin models.NullableBool) models.Role {
	if isAdmin.Present {
		return models.RoleFromAdminFlag(isAdmin.True())
	}
	if current == models.RoleAdmin {
		return models.RoleAdmin
	}

	return models.RoleGuest
}

// Delete removes the user with id. The existence check runs first so a
// missing user is reported as store.ErrUserNotFound.
func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepository.FindByID(ctx, id); err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := s.userRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	_, err := s.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Info().Str("email", email).Msg("admin account already present")
		return false, nil
	case !errors.Is(err, store.ErrUserNotFound):
		return false, fmt.Errorf("admin search by email failed: %w", err)
	}

	user, err := s.create(ctx, name, email, password, models.RoleAdmin)
	if err != nil {
		return false, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", email).Msg("admin account created")
	return true, nil
}
