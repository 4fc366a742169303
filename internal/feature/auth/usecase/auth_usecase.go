package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tradefolio_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists when a user
	// with the same email is already stored.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenService abstracts session token issuance and verification.
type TokenService interface {
	GenerateToken(userID uint) (string, error)
	ParseToken(raw string) (userID uint, tokenID string, expiresAt time.Time, err error)
}

// SessionStore records revoked token IDs. It may be nil, in which case
// logout degrades to cookie clearing only.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Email    string
	Password string
	Username string
	Name     string
	Phone    string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users    UserRepository
	tokens   TokenService
	sessions SessionStore
}

// NewAuthUsecase creates a new authUsecase instance. sessions may be nil.
func NewAuthUsecase(users UserRepository, tokens TokenService, sessions SessionStore) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password and issues a session token.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, string, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Username: strings.TrimSpace(in.Username),
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		Password: string(hashed),
		IsActive: true,
	}
	if user.Name == "" {
		user.Name = user.Username
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns a session token on success.
// To mitigate timing attacks, a bcrypt comparison runs even when the user
// does not exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	// Dummy hash keeps the bcrypt comparison on the not-found path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// A missing user, a disabled account, and a wrong password all yield the
	// same generic error.
	if err != nil || compareErr != nil || !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return user, token, nil
}

// Logout revokes the session token when a session store is configured.
// An unparseable token is not an error: the cookie gets cleared either way.
func (u *authUsecase) Logout(ctx context.Context, rawToken string) {
	if u.sessions == nil || rawToken == "" {
		return
	}
	_, tokenID, expiresAt, err := u.tokens.ParseToken(rawToken)
	if err != nil || tokenID == "" {
		return
	}
	if err := u.sessions.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		slog.Warn("failed to revoke session", "error", err)
	}
}

// Verify resolves a raw token to its active user. Any failure (expired,
// malformed, revoked, user missing or inactive) returns an error and never
// a partial identity.
func (u *authUsecase) Verify(ctx context.Context, rawToken string) (*entity.User, error) {
	userID, tokenID, _, err := u.tokens.ParseToken(rawToken)
	if err != nil {
		return nil, err
	}
	if u.sessions != nil && tokenID != "" {
		if revoked, err := u.sessions.IsRevoked(ctx, tokenID); err == nil && revoked {
			return nil, ErrInvalidCredentials
		}
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// ResolveActiveUser reports whether the ID maps to an existing, active user.
// It backs the auth middleware.
func (u *authUsecase) ResolveActiveUser(ctx context.Context, id uint) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return ErrUserInactive
	}
	return nil
}
