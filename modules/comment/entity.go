package comment

import (
	"github.com/example/board-service/domain/entity"
)

// Comment represents a comment on a post. AuthorID is fixed at
// creation from the authenticated identity.
type Comment struct {
	entity.Base
	BoardID    string `gorm:"size:36;not null;index" json:"board_id"`
	Content    string `gorm:"size:500;not null" json:"content"`
	AuthorID   string `gorm:"size:20;not null;index" json:"author_id"`
	AuthorName string `gorm:"size:50;not null" json:"author_name"`
}

// TableName returns the table name for the Comment entity.
func (Comment) TableName() string {
	return "comments"
}
