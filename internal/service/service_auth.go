package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/crypto"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/store"
	"github.com/werlleyg/boilerplate-api/internal/utils"
	"github.com/werlleyg/boilerplate-api/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against the stored bcrypt digest and issues
// HS256-signed JWTs whose subject is the user id.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// hasher compares submitted passwords with stored digests.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// When empty, the issuer is neither set nor checked.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.SecretKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate looks the user up by email, checks the password and issues a
// session token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// Storage and hashing failures are returned wrapped.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("authentication failed: unknown email")
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("password comparison failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("authentication failed: wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{Token: token, User: user}, nil
}

// CreateToken issues a signed JWT for the given user.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, tampered, wrong issuer, malformed) is
// normalised to ErrTokenInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
