package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/board-service/modules/api"
	"github.com/example/board-service/modules/auth"
	"github.com/example/board-service/modules/board"
	"github.com/example/board-service/modules/comment"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Bulletin Board Service ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule())    // Independent (signup, login, token verification)
	app.Register(board.NewModule())   // Independent (post CRUD)
	app.Register(comment.NewModule()) // Depends on board (comments belong to a post)
	app.Register(api.NewModule())     // Depends on auth, board, comment

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/v1/auth/signup          - Create an account")
	log.Println("  POST   /api/v1/auth/login           - Login and get a token")
	log.Println("  GET    /api/v1/auth/validate        - Check a bearer token")
	log.Println("  GET    /api/v1/boards               - List posts")
	log.Println("  GET    /api/v1/boards/:id           - Get a post with comments")
	log.Println("  GET    /api/v1/boards/:id/comments  - List comments of a post")
	log.Println("  GET    /health                      - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  POST   /api/v1/boards               - Create a post")
	log.Println("  PUT    /api/v1/boards/:id           - Update own post")
	log.Println("  DELETE /api/v1/boards/:id           - Delete own post")
	log.Println("  POST   /api/v1/boards/:id/comments  - Create a comment")
	log.Println("  PUT    /api/v1/comments/:id         - Update own comment")
	log.Println("  DELETE /api/v1/comments/:id         - Delete own comment")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
