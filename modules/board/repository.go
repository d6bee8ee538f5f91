package board

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a board post is not found.
var ErrNotFound = errors.New("board not found")

// Repository provides access to board storage. Soft-deleted posts are
// excluded from every query by the gorm.DeletedAt marker.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new board repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new post.
func (r *Repository) Create(b *Board) error {
	if err := r.db.Create(b).Error; err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	return nil
}

// FindByID retrieves a post by its ID.
func (r *Repository) FindByID(id string) (*Board, error) {
	var b Board
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return &b, nil
}

// FindAll retrieves all posts, newest first.
func (r *Repository) FindAll() ([]*Board, error) {
	var boards []*Board
	if err := r.db.Order("created_at DESC").Find(&boards).Error; err != nil {
		return nil, fmt.Errorf("failed to find boards: %w", err)
	}
	return boards, nil
}

// Update updates an existing post.
func (r *Repository) Update(b *Board) error {
	result := r.db.Model(&Board{}).Where("id = ?", b.ID).Updates(map[string]any{
		"title":   b.Title,
		"content": b.Content,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update board: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post by ID (soft delete).
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&Board{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
