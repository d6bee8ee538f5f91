package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed is returned when a token cannot be parsed.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalidSignature is returned when the signature does not verify.
	ErrTokenInvalidSignature = errors.New("invalid token signature")
)

// HMAC-SHA-512 wants at least a 64-byte key.
const minSecretKeyLen = 64

// TokenConfig holds token codec configuration.
type TokenConfig struct {
	SecretKey string
	Validity  time.Duration
}

// DefaultTokenConfig returns a default token configuration.
// In production, the secret key must be loaded from environment variables.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		SecretKey: "insecure-development-secret-key-change-me-0123456789abcdefghijkl",
		Validity:  24 * time.Hour,
	}
}

// TokenClaims is the signed payload carried by every issued token.
type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies signed, self-contained identity tokens.
// Verification needs no state beyond the secret, so any number of
// requests can be verified concurrently; the codec is read-only after
// construction.
type TokenCodec struct {
	config TokenConfig
}

// NewTokenCodec creates a TokenCodec. It rejects secrets too short for
// HMAC-SHA-512 rather than silently signing with a weak key.
func NewTokenCodec(config TokenConfig) (*TokenCodec, error) {
	if len(config.SecretKey) < minSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d bytes, got %d", minSecretKeyLen, len(config.SecretKey))
	}
	if config.Validity <= 0 {
		return nil, fmt.Errorf("token validity must be positive, got %s", config.Validity)
	}
	return &TokenCodec{config: config}, nil
}

// Issue creates a signed token for the given user. The expiry is
// issued-at plus the configured validity.
func (c *TokenCodec) Issue(userID, username, role string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.config.Validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(c.config.SecretKey))
}

// Verify checks the token's signature and expiry and returns the
// decoded claims. Failures map onto the codec's error kinds so callers
// can distinguish a forged token from a stale one.
func (c *TokenCodec) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalidSignature
		}
		return []byte(c.config.SecretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// Validity returns the configured token validity in seconds.
func (c *TokenCodec) Validity() int64 {
	return int64(c.config.Validity.Seconds())
}
