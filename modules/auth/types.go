package auth

import (
	"time"
)

// SignupRequest represents an account creation request.
type SignupRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignupResponse represents an account creation response.
// A non-empty Code marks an expected failure.
type SignupResponse struct {
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// UserInfo is the redacted account summary returned on login.
type UserInfo struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse represents a login response with the issued token.
type LoginResponse struct {
	Code        string   `json:"code,omitempty"`
	Message     string   `json:"message,omitempty"`
	AccessToken string   `json:"accessToken,omitempty"`
	TokenType   string   `json:"tokenType,omitempty"`
	ExpiresIn   int64    `json:"expiresIn,omitempty"`
	UserInfo    UserInfo `json:"userInfo,omitempty"`
}

// VerifyTokenRequest represents a token verification request.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse represents a token verification response.
// Valid is false for every verification failure; the middleware treats
// such requests as anonymous rather than rejecting them.
type VerifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Error    string `json:"error,omitempty"`
}
