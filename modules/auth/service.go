package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"regexp"

	"github.com/example/board-service/domain/user"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned when the password does not verify.
	ErrInvalidCredentials = errors.New("invalid user id or password")
	// ErrAccountInactive is returned when the account is deactivated.
	ErrAccountInactive = errors.New("account is deactivated")
	// ErrInvalidUserID is returned when the user id format is invalid.
	ErrInvalidUserID = errors.New("user id must be 4-20 alphanumeric characters")
	// ErrWeakPassword is returned when the password is too short.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrUsernameRequired is returned when the display name is missing or too long.
	ErrUsernameRequired = errors.New("username is required and must be at most 50 characters")
)

var userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)

// LoginResult is what a successful login hands back to the boundary:
// the signed token, its validity window and the account it belongs to.
// The caller is responsible for redacting the password hash.
type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
	User        *user.User
}

// AuthService handles signup and login business logic.
type AuthService struct {
	repo   *UserRepository
	hasher *PasswordHasher
	codec  *TokenCodec
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *UserRepository, hasher *PasswordHasher, codec *TokenCodec) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
	}
}

// Signup creates a new active account with the USER role.
func (s *AuthService) Signup(_ context.Context, userID, password, username, email string) (*user.User, error) {
	if !userIDPattern.MatchString(userID) {
		return nil, ErrInvalidUserID
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}
	if username == "" || len(username) > 50 {
		return nil, ErrUsernameRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	// Check first so the common case fails before the expensive hash;
	// the unique index still catches a concurrent signup.
	exists, err := s.repo.UserIDExists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user id: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		UserID:       userID,
		PasswordHash: passwordHash,
		Username:     username,
		Email:        email,
		Role:         user.RoleUser,
		Active:       true,
	}
	u.ID = uuid.New().String()

	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	log.Printf("[auth] New user signed up: %s", u.UserID)
	return u, nil
}

// Login verifies credentials and issues a signed token. Checks run in a
// fixed order: account exists, account can log in, password verifies.
func (s *AuthService) Login(_ context.Context, userID, password string) (*LoginResult, error) {
	u, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if !u.CanLogin() {
		return nil, ErrAccountInactive
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.codec.Issue(u.UserID, u.Username, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Printf("[auth] User logged in: %s", u.UserID)
	return &LoginResult{
		AccessToken: accessToken,
		ExpiresIn:   s.codec.Validity(),
		User:        u,
	}, nil
}

// ValidateToken reports whether a token verifies. Diagnostic helper.
func (s *AuthService) ValidateToken(_ context.Context, token string) bool {
	_, err := s.codec.Verify(token)
	return err == nil
}

// UserIDFromToken extracts the subject from a verified token.
func (s *AuthService) UserIDFromToken(_ context.Context, token string) (string, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// VerifyToken decodes a token into the request-scoped identity.
func (s *AuthService) VerifyToken(_ context.Context, token string) (*user.Claims, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}
	return &user.Claims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
