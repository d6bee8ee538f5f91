package api

import (
	"strings"

	"github.com/example/board-service/domain/user"
	"github.com/example/board-service/modules/auth"
	"github.com/gofiber/fiber/v2"
)

const (
	// UserContextKey is the key used to store the authenticated
	// identity in the Fiber context.
	UserContextKey = "user"

	bearerPrefix = "Bearer "
)

// Authenticate runs once per request, before any business logic. It
// extracts a bearer token and, if it verifies, stores the identity in
// the request context. A missing header, a malformed prefix or a bad
// token never fails the request: the request simply stays anonymous
// and route-level policy decides what that means.
func Authenticate(authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return c.Next()
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == "" {
			return c.Next()
		}

		claims, err := authPort.VerifyToken(c.UserContext(), token)
		if err != nil {
			// Degrade to anonymous; protected routes reject later.
			return c.Next()
		}

		c.Locals(UserContextKey, claims)
		return c.Next()
	}
}

// RequireUser rejects anonymous requests. Protected routes chain it
// after Authenticate.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Authentication required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated identity of the request, or
// nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *user.Claims {
	claims, ok := c.Locals(UserContextKey).(*user.Claims)
	if !ok {
		return nil
	}
	return claims
}
