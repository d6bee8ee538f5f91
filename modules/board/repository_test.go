package board

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newTestBoard(authorID string) *Board {
	b := &Board{
		Title:      "Test post",
		Content:    "Some content",
		AuthorID:   authorID,
		AuthorName: "Tester",
	}
	b.ID = uuid.New().String()
	return b
}

func TestRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	b := newTestBoard("alice01")
	if err := repo.Create(b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(b.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != b.Title {
		t.Errorf("found.Title = %v, want %v", found.Title, b.Title)
	}
	if found.AuthorID != "alice01" {
		t.Errorf("found.AuthorID = %v, want %v", found.AuthorID, "alice01")
	}
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if _, err := repo.FindByID("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	b := newTestBoard("alice01")
	if err := repo.Update(b); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	b := newTestBoard("alice01")
	if err := repo.Create(b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Queries no longer see the post.
	if _, err := repo.FindByID(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrNotFound", err)
	}

	// But the row is still there, soft-deleted.
	var count int64
	if err := db.Unscoped().Model(&Board{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("unscoped row count = %v, want 1", count)
	}

	// Deleting again reports not found.
	if err := repo.Delete(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
