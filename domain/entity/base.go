package entity

import (
	"time"

	"gorm.io/gorm"
)

// Base holds the columns shared by every persisted entity: identifier,
// timestamps and the soft-delete marker. Entities embed it by value.
type Base struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the entity has been soft-deleted.
func (b Base) IsDeleted() bool {
	return b.DeletedAt.Valid
}
