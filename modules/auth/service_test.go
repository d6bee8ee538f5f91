package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/board-service/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&user.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	codec, err := NewTokenCodec(testTokenConfig(24 * time.Hour))
	if err != nil {
		t.Fatalf("NewTokenCodec() error = %v", err)
	}
	return NewAuthService(NewUserRepository(db), NewPasswordHasher(), codec), db
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, "alice01", "secret123", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if u.PasswordHash == "secret123" {
		t.Error("Signup() stored the plaintext password")
	}
	if u.Role != user.RoleUser {
		t.Errorf("u.Role = %v, want %v", u.Role, user.RoleUser)
	}
	if !u.Active {
		t.Error("new account should be active")
	}

	result, err := svc.Login(ctx, "alice01", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.ExpiresIn != 86400 {
		t.Errorf("result.ExpiresIn = %v, want %v", result.ExpiresIn, 86400)
	}
	if result.User.UserID != "alice01" {
		t.Errorf("result.User.UserID = %v, want %v", result.User.UserID, "alice01")
	}

	// The issued token must verify and carry the right identity.
	claims, err := svc.VerifyToken(ctx, result.AccessToken)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.UserID != "alice01" {
		t.Errorf("claims.UserID = %v, want %v", claims.UserID, "alice01")
	}
	if claims.Username != "Alice" {
		t.Errorf("claims.Username = %v, want %v", claims.Username, "Alice")
	}
	if claims.Role != user.RoleUser {
		t.Errorf("claims.Role = %v, want %v", claims.Role, user.RoleUser)
	}
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	longPassword := make([]byte, 73)
	for i := range longPassword {
		longPassword[i] = 'a'
	}

	tests := []struct {
		name     string
		userID   string
		password string
		username string
		email    string
		wantErr  error
	}{
		{
			name:     "user id too short",
			userID:   "ab1",
			password: "secret123",
			username: "Alice",
			email:    "alice@example.com",
			wantErr:  ErrInvalidUserID,
		},
		{
			name:     "user id with symbols",
			userID:   "alice-01!",
			password: "secret123",
			username: "Alice",
			email:    "alice@example.com",
			wantErr:  ErrInvalidUserID,
		},
		{
			name:     "password too short",
			userID:   "alice01",
			password: "five5",
			username: "Alice",
			email:    "alice@example.com",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "password too long",
			userID:   "alice01",
			password: string(longPassword),
			username: "Alice",
			email:    "alice@example.com",
			wantErr:  ErrPasswordTooLong,
		},
		{
			name:     "missing username",
			userID:   "alice01",
			password: "secret123",
			username: "",
			email:    "alice@example.com",
			wantErr:  ErrUsernameRequired,
		},
		{
			name:     "invalid email",
			userID:   "alice01",
			password: "secret123",
			username: "Alice",
			email:    "not-an-email",
			wantErr:  ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.userID, tt.password, tt.username, tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Signup() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthService_DuplicateSignup(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "alice01", "secret123", "Alice", "alice@example.com"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	_, err := svc.Signup(ctx, "alice01", "other-password", "Impostor", "other@example.com")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("Signup() error = %v, want ErrDuplicateUser", err)
	}

	// The existing record must be untouched.
	var count int64
	if err := db.Model(&user.User{}).Where("user_id = ?", "alice01").Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %v, want 1", count)
	}
	if _, err := svc.Login(ctx, "alice01", "secret123"); err != nil {
		t.Errorf("Login() with original password error = %v", err)
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "alice01", "secret123", "Alice", "alice@example.com"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody99", "secret123")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("Login() error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice01", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		if err := db.Model(&user.User{}).Where("user_id = ?", "alice01").Update("active", false).Error; err != nil {
			t.Fatalf("failed to deactivate account: %v", err)
		}

		// Correct credentials must not help a deactivated account.
		_, err := svc.Login(ctx, "alice01", "secret123")
		if !errors.Is(err, ErrAccountInactive) {
			t.Errorf("Login() error = %v, want ErrAccountInactive", err)
		}
	})
}

func TestAuthService_TokenPassThroughs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "alice01", "secret123", "Alice", "alice@example.com"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	result, err := svc.Login(ctx, "alice01", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if !svc.ValidateToken(ctx, result.AccessToken) {
		t.Error("ValidateToken() = false for a freshly issued token")
	}
	if svc.ValidateToken(ctx, "garbage") {
		t.Error("ValidateToken() = true for garbage")
	}

	userID, err := svc.UserIDFromToken(ctx, result.AccessToken)
	if err != nil {
		t.Fatalf("UserIDFromToken() error = %v", err)
	}
	if userID != "alice01" {
		t.Errorf("UserIDFromToken() = %v, want %v", userID, "alice01")
	}
}
