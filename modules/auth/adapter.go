package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/board-service/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthPort defines the interface for authentication operations.
// This is the port that other modules use to access auth functionality.
type AuthPort interface {
	VerifyToken(ctx context.Context, token string) (*user.Claims, error)
}

// AuthAdapter implements AuthPort using the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{
		container: container,
	}
}

// VerifyToken verifies a token and returns the identity it carries.
func (a *AuthAdapter) VerifyToken(ctx context.Context, token string) (*user.Claims, error) {
	req := VerifyTokenRequest{Token: token}
	var resp VerifyTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"verify-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("verify-token request failed: %w", err)
	}

	if !resp.Valid {
		return nil, fmt.Errorf("token verification failed: %s", resp.Error)
	}

	return &user.Claims{
		UserID:   resp.UserID,
		Username: resp.Username,
		Role:     resp.Role,
	}, nil
}
