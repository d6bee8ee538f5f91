package api

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/board-service/modules/auth"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP API module.
type APIModule struct {
	app              *fiber.App
	addr             string
	authContainer    mono.ServiceContainer
	boardContainer   mono.ServiceContainer
	commentContainer mono.ServiceContainer
	authPort         auth.AuthPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	addr := os.Getenv("BOARD_HTTP_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	return &APIModule{addr: addr}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"auth", "board", "comment"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authContainer = container
		m.authPort = auth.NewAuthAdapter(container)
	case "board":
		m.boardContainer = container
	case "comment":
		m.commentContainer = container
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.authContainer == nil || m.boardContainer == nil || m.commentContainer == nil {
		return fmt.Errorf("module dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", m.addr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

// setupRoutes configures all API routes. Authentication runs on every
// request but never rejects by itself; mutating routes additionally
// require an authenticated caller.
func (m *APIModule) setupRoutes() {
	handlers := NewHandlers(m.authContainer, m.boardContainer, m.commentContainer)

	// Health check endpoint
	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	v1 := m.app.Group("/api/v1")
	v1.Use(Authenticate(m.authPort))

	// Public auth routes
	authRoutes := v1.Group("/auth")
	authRoutes.Post("/signup", handlers.Signup)
	authRoutes.Post("/login", handlers.Login)
	authRoutes.Get("/validate", handlers.ValidateToken)

	// Board routes: reads are public, writes require a caller identity
	boards := v1.Group("/boards")
	boards.Get("/", handlers.ListBoards)
	boards.Get("/:id", handlers.GetBoard)
	boards.Get("/:id/comments", handlers.ListComments)
	boards.Post("/", RequireUser(), handlers.CreateBoard)
	boards.Put("/:id", RequireUser(), handlers.UpdateBoard)
	boards.Delete("/:id", RequireUser(), handlers.DeleteBoard)
	boards.Post("/:id/comments", RequireUser(), handlers.CreateComment)

	// Comment routes: writes only, reads go through the board
	comments := v1.Group("/comments")
	comments.Put("/:id", RequireUser(), handlers.UpdateComment)
	comments.Delete("/:id", RequireUser(), handlers.DeleteComment)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
