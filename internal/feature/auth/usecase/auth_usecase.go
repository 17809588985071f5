package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"social_backend/internal/feature/users/domain"
	"social_backend/internal/feature/users/domain/entity"
)

// Default display fields assigned to newly registered accounts.
const (
	defaultProfilePic    = "https://res.cloudinary.com/domvrvasq/image/upload/default_czji94.jpg"
	defaultBio           = " "
	defaultBackgroundPic = " "
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns domain.ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the specified username.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenGenerator defines the interface for bearer token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, username string) (string, error)
}

// authUsecase implements the credential issuance and verification logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Register creates a new account and issues a bearer token for it.
// The password is stored only as a bcrypt hash. The username check and the
// insert are two separate store calls; the unique index on username is the
// final arbiter when two registrations race.
func (u *authUsecase) Register(ctx context.Context, username, password string) (string, string, error) {
	if username == "" || password == "" {
		return "", "", ErrMissingFields
	}

	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return "", "", domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", "", fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:      username,
		Password:      string(hashed),
		RegisteredAt:  time.Now(),
		ProfilePic:    defaultProfilePic,
		Bio:           defaultBio,
		BackgroundPic: defaultBackgroundPic,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user.Username, token, nil
}

// Login authenticates a user and returns the user record with a fresh token.
// Unknown username and wrong password produce distinct errors that map to
// the same HTTP status at the transport boundary.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", ErrIncorrectUsername
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrIncorrectPassword
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}
