package comment

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a comment is not found.
var ErrNotFound = errors.New("comment not found")

// Repository provides access to comment storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comment repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new comment.
func (r *Repository) Create(c *Comment) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByID retrieves a comment by its ID.
func (r *Repository) FindByID(id string) (*Comment, error) {
	var c Comment
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return &c, nil
}

// FindByBoardID retrieves the comments of a post, oldest first.
func (r *Repository) FindByBoardID(boardID string) ([]*Comment, error) {
	var comments []*Comment
	if err := r.db.Where("board_id = ?", boardID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	return comments, nil
}

// Update updates an existing comment.
func (r *Repository) Update(c *Comment) error {
	result := r.db.Model(&Comment{}).Where("id = ?", c.ID).Update("content", c.Content)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a comment by ID (soft delete).
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&Comment{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
