package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/internal/validators"
	"github.com/MKhiriev/review-site/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the identity
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// passwordHashCost is the bcrypt cost for new password hashes.
	passwordHashCost int

	// dummyHash is compared against when the username is unknown, so a
	// failed login costs one bcrypt comparison either way.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	dummyHash, err := utils.HashPassword("review-site", cfg.PasswordHashCost)
	if err != nil {
		logger.Err(err).Msg("error preparing dummy password hash")
	}

	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewReviewSiteValidator(),
		tokenSignKey:     cfg.TokenSignKey,
		passwordHashCost: cfg.PasswordHashCost,
		dummyHash:        dummyHash,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the username and password, hashes the password with bcrypt
// and delegates persistence to the UserRepository.
//
// Returns the public identity of the new user or:
//   - ErrInvalidDataProvided if the username or password is malformed.
//   - store.ErrUsernameTaken if the username is already registered.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(user.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Identity{}, err
	}
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.Identity{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Identity(), nil
}

// Login authenticates an existing user.
//
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
// Storage failures other than "not found" are returned wrapped.
func (a *authService) Login(ctx context.Context, user models.User) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		return models.Identity{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		utils.ComparePassword(a.dummyHash, user.Password)
		log.Debug().Str("username", user.Username).Msg("login for unknown username")
		return models.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.Identity{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.ComparePassword(foundUser.Password, user.Password) {
		log.Debug().Str("id", foundUser.UserID).Msg("wrong password")
		return models.Identity{}, ErrInvalidCredentials
	}

	return foundUser.Identity(), nil
}

// CreateToken issues a signed JWT for the given identity. The token carries
// only the user id and never expires.
func (a *authService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(identity.UserID, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, malformed, wrong algorithm, missing
// id) is normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// Identify loads the user a verified token was issued for. A token whose
// user no longer exists yields ErrUnknownTokenOwner.
func (a *authService) Identify(ctx context.Context, userID string) (models.Identity, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Identity{}, ErrUnknownTokenOwner
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("user search by id failed")
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Identity(), nil
}
