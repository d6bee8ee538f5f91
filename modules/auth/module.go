package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/board-service/domain/apperr"
	"github.com/example/board-service/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AuthModule provides signup, login and token verification services.
type AuthModule struct {
	db      *gorm.DB
	service *AuthService
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*AuthModule)(nil)
var _ mono.ServiceProviderModule = (*AuthModule)(nil)
var _ mono.HealthCheckableModule = (*AuthModule)(nil)

// NewModule creates a new AuthModule.
func NewModule() *AuthModule {
	dbPath := os.Getenv("BOARD_DB_PATH")
	if dbPath == "" {
		dbPath = "board.db"
	}
	return &AuthModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Start initializes the auth module.
func (m *AuthModule) Start(_ context.Context) error {
	// TranslateError turns the driver's unique-constraint failure into
	// gorm.ErrDuplicatedKey, which the repository relies on to report a
	// signup that loses a duplicate race.
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&user.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewUserRepository(db)
	hasher := NewPasswordHasher()

	codec, err := NewTokenCodec(loadTokenConfig())
	if err != nil {
		return fmt.Errorf("failed to create token codec: %w", err)
	}

	m.service = NewAuthService(repo, hasher, codec)

	log.Printf("[auth] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *AuthModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[auth] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AuthModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "signup", json.Unmarshal, json.Marshal, m.handleSignup,
	); err != nil {
		return fmt.Errorf("failed to register signup service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "verify-token", json.Unmarshal, json.Marshal, m.handleVerifyToken,
	); err != nil {
		return fmt.Errorf("failed to register verify-token service: %w", err)
	}

	log.Printf("[auth] Registered services: signup, login, verify-token")
	return nil
}

// handleSignup handles account creation.
func (m *AuthModule) handleSignup(ctx context.Context, req SignupRequest, _ *mono.Msg) (SignupResponse, error) {
	u, err := m.service.Signup(ctx, req.UserID, req.Password, req.Username, req.Email)
	if err != nil {
		if code, msg, ok := authFailure(err); ok {
			return SignupResponse{Code: code, Message: msg}, nil
		}
		return SignupResponse{}, err
	}

	return SignupResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}, nil
}

// handleLogin handles credential verification and token issuing.
func (m *AuthModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	result, err := m.service.Login(ctx, req.UserID, req.Password)
	if err != nil {
		if code, msg, ok := authFailure(err); ok {
			return LoginResponse{Code: code, Message: msg}, nil
		}
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
		UserInfo: UserInfo{
			UserID:   result.User.UserID,
			Username: result.User.Username,
			Email:    result.User.Email,
			Role:     result.User.Role,
		},
	}, nil
}

// handleVerifyToken handles token verification. Verification failures
// are a response, not an error: the caller decides what an invalid
// token means for the request at hand.
func (m *AuthModule) handleVerifyToken(ctx context.Context, req VerifyTokenRequest, _ *mono.Msg) (VerifyTokenResponse, error) {
	claims, err := m.service.VerifyToken(ctx, req.Token)
	if err != nil {
		errMsg := "invalid token"
		if errors.Is(err, ErrTokenExpired) {
			errMsg = "token expired"
		}
		return VerifyTokenResponse{
			Valid: false,
			Error: errMsg,
		}, nil
	}

	return VerifyTokenResponse{
		Valid:    true,
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// authFailure maps the service's expected failures onto wire codes.
// Unexpected errors stay errors and surface as a generic server failure.
func authFailure(err error) (code, message string, ok bool) {
	switch {
	case errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrPasswordTooLong),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrUsernameRequired):
		return apperr.CodeInvalidArgument, err.Error(), true
	case errors.Is(err, ErrDuplicateUser):
		return apperr.CodeDuplicateUser, "user id already exists", true
	case errors.Is(err, ErrUserNotFound):
		return apperr.CodeUserNotFound, "user not found", true
	case errors.Is(err, ErrAccountInactive):
		return apperr.CodeAccountInactive, "account is deactivated", true
	case errors.Is(err, ErrInvalidCredentials):
		return apperr.CodeInvalidCredentials, "invalid user id or password", true
	default:
		return "", "", false
	}
}

// loadTokenConfig loads token configuration from environment variables.
// The secret must come from the environment in production; the default
// exists only so the service runs out of the box locally.
func loadTokenConfig() TokenConfig {
	config := DefaultTokenConfig()

	if secret := os.Getenv("BOARD_JWT_SECRET"); secret != "" {
		config.SecretKey = secret
	}

	if v := os.Getenv("BOARD_JWT_VALIDITY_SECONDS"); v != "" {
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil && seconds > 0 {
			config.Validity = time.Duration(seconds) * time.Second
		} else {
			log.Printf("[auth] Ignoring invalid BOARD_JWT_VALIDITY_SECONDS: %q", v)
		}
	}

	return config
}
