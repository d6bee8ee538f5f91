package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/example/board-service/modules/board"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CommentModule provides comment CRUD services via GORM + SQLite.
type CommentModule struct {
	db     *gorm.DB
	repo   *Repository
	boards board.BoardPort
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*CommentModule)(nil)
var _ mono.ServiceProviderModule = (*CommentModule)(nil)
var _ mono.DependentModule = (*CommentModule)(nil)
var _ mono.HealthCheckableModule = (*CommentModule)(nil)

// NewModule creates a new CommentModule.
func NewModule() *CommentModule {
	dbPath := os.Getenv("BOARD_DB_PATH")
	if dbPath == "" {
		dbPath = "board.db"
	}
	return &CommentModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *CommentModule) Name() string {
	return "comment"
}

// Dependencies returns the list of module dependencies.
func (m *CommentModule) Dependencies() []string {
	return []string{"board"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *CommentModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "board" {
		m.boards = board.NewBoardAdapter(container)
	}
}

// Start initializes the database connection and runs migrations.
func (m *CommentModule) Start(_ context.Context) error {
	if m.boards == nil {
		return fmt.Errorf("board dependency not set")
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&Comment{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.repo = NewRepository(db)

	log.Printf("[comment] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *CommentModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[comment] Module stopped")
	return nil
}

// Health performs a health check on the comment module.
func (m *CommentModule) Health(ctx context.Context) mono.HealthStatus {
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
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *CommentModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createComment,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-by-board", json.Unmarshal, json.Marshal, m.listByBoard,
	); err != nil {
		return fmt.Errorf("failed to register list-by-board service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateComment,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteComment,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[comment] Registered services: create, list-by-board, update, delete")
	return nil
}
