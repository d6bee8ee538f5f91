package board

import (
	"github.com/example/board-service/domain/entity"
)

// Board represents a post on the bulletin board. AuthorID is set once
// at creation from the authenticated identity and never reassigned; it
// is what ownership checks compare against.
type Board struct {
	entity.Base
	Title      string `gorm:"size:100;not null" json:"title"`
	Content    string `gorm:"size:4000;not null" json:"content"`
	AuthorID   string `gorm:"size:20;not null;index" json:"author_id"`
	AuthorName string `gorm:"size:50;not null" json:"author_name"`
}

// TableName returns the table name for the Board entity.
func (Board) TableName() string {
	return "boards"
}
