package comment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/board-service/domain/apperr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// mockBoardPort implements board.BoardPort for testing.
type mockBoardPort struct {
	exists bool
	err    error
}

func (m *mockBoardPort) Exists(_ context.Context, _ string) (bool, error) {
	return m.exists, m.err
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&Comment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestModule(t *testing.T, boards *mockBoardPort) *CommentModule {
	t.Helper()
	db := setupTestDB(t)
	return &CommentModule{db: db, repo: NewRepository(db), boards: boards}
}

func createTestComment(t *testing.T, m *CommentModule, authorID string) CommentResponse {
	t.Helper()

	resp, err := m.createComment(context.Background(), CreateCommentRequest{
		BoardID:    "board-1",
		Content:    "Nice post",
		AuthorID:   authorID,
		AuthorName: "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("createComment() error = %v", err)
	}
	if resp.Code != "" {
		t.Fatalf("createComment() code = %v", resp.Code)
	}
	return resp
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("sets author from identity", func(t *testing.T) {
		m := newTestModule(t, &mockBoardPort{exists: true})

		resp := createTestComment(t, m, "alice01")
		if resp.AuthorID != "alice01" {
			t.Errorf("resp.AuthorID = %v, want %v", resp.AuthorID, "alice01")
		}
		if resp.BoardID != "board-1" {
			t.Errorf("resp.BoardID = %v, want %v", resp.BoardID, "board-1")
		}
	})

	t.Run("missing board", func(t *testing.T) {
		m := newTestModule(t, &mockBoardPort{exists: false})

		resp, err := m.createComment(ctx, CreateCommentRequest{
			BoardID:  "gone",
			Content:  "hello",
			AuthorID: "alice01",
		}, nil)
		if err != nil {
			t.Fatalf("createComment() error = %v", err)
		}
		if resp.Code != apperr.CodeNotFound {
			t.Errorf("resp.Code = %v, want %v", resp.Code, apperr.CodeNotFound)
		}
	})

	t.Run("board lookup failure propagates", func(t *testing.T) {
		m := newTestModule(t, &mockBoardPort{err: errors.New("board module down")})

		_, err := m.createComment(ctx, CreateCommentRequest{
			BoardID:  "board-1",
			Content:  "hello",
			AuthorID: "alice01",
		}, nil)
		if err == nil {
			t.Error("createComment() should propagate board port failure")
		}
	})

	t.Run("content validation", func(t *testing.T) {
		m := newTestModule(t, &mockBoardPort{exists: true})

		for _, content := range []string{"", "   ", strings.Repeat("c", 501)} {
			resp, err := m.createComment(ctx, CreateCommentRequest{
				BoardID:  "board-1",
				Content:  content,
				AuthorID: "alice01",
			}, nil)
			if err != nil {
				t.Fatalf("createComment() error = %v", err)
			}
			if resp.Code != apperr.CodeInvalidArgument {
				t.Errorf("content %q: resp.Code = %v, want %v", content, resp.Code, apperr.CodeInvalidArgument)
			}
		}
	})
}

func TestUpdateComment_OwnershipOrder(t *testing.T) {
	m := newTestModule(t, &mockBoardPort{exists: true})
	ctx := context.Background()

	created := createTestComment(t, m, "alice01")

	t.Run("missing comment is not found", func(t *testing.T) {
		resp, err := m.updateComment(ctx, UpdateCommentRequest{
			ID:       "no-such-id",
			Content:  "edited",
			CallerID: "bob02",
		}, nil)
		if err != nil {
			t.Fatalf("updateComment() error = %v", err)
		}
		if resp.Code != apperr.CodeNotFound {
			t.Errorf("resp.Code = %v, want %v", resp.Code, apperr.CodeNotFound)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		resp, err := m.updateComment(ctx, UpdateCommentRequest{
			ID:       created.ID,
			Content:  "edited",
			CallerID: "bob02",
		}, nil)
		if err != nil {
			t.Fatalf("updateComment() error = %v", err)
		}
		if resp.Code != apperr.CodeForbidden {
			t.Errorf("resp.Code = %v, want %v", resp.Code, apperr.CodeForbidden)
		}
	})

	t.Run("owner may update", func(t *testing.T) {
		time.Sleep(10 * time.Millisecond)

		resp, err := m.updateComment(ctx, UpdateCommentRequest{
			ID:       created.ID,
			Content:  "edited",
			CallerID: "alice01",
		}, nil)
		if err != nil {
			t.Fatalf("updateComment() error = %v", err)
		}
		if resp.Code != "" {
			t.Fatalf("resp.Code = %v, want success", resp.Code)
		}
		if resp.Content != "edited" {
			t.Errorf("resp.Content = %v, want %v", resp.Content, "edited")
		}
		// The response must carry the timestamp the update wrote, not
		// the one loaded before the mutation.
		if !resp.UpdatedAt.After(created.UpdatedAt) {
			t.Errorf("resp.UpdatedAt = %v, want later than %v", resp.UpdatedAt, created.UpdatedAt)
		}
	})
}

func TestDeleteComment_OwnershipOrder(t *testing.T) {
	m := newTestModule(t, &mockBoardPort{exists: true})
	ctx := context.Background()

	created := createTestComment(t, m, "alice01")

	t.Run("missing comment is not found regardless of caller", func(t *testing.T) {
		for _, caller := range []string{"alice01", "bob02", ""} {
			resp, err := m.deleteComment(ctx, DeleteCommentRequest{ID: "no-such-id", CallerID: caller}, nil)
			if err != nil {
				t.Fatalf("deleteComment() error = %v", err)
			}
			if resp.Code != apperr.CodeNotFound {
				t.Errorf("caller %q: resp.Code = %v, want %v", caller, resp.Code, apperr.CodeNotFound)
			}
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		resp, err := m.deleteComment(ctx, DeleteCommentRequest{ID: created.ID, CallerID: "bob02"}, nil)
		if err != nil {
			t.Fatalf("deleteComment() error = %v", err)
		}
		if resp.Code != apperr.CodeForbidden {
			t.Errorf("resp.Code = %v, want %v", resp.Code, apperr.CodeForbidden)
		}
	})

	t.Run("owner may delete", func(t *testing.T) {
		resp, err := m.deleteComment(ctx, DeleteCommentRequest{ID: created.ID, CallerID: "alice01"}, nil)
		if err != nil {
			t.Fatalf("deleteComment() error = %v", err)
		}
		if resp.Code != "" || !resp.Deleted {
			t.Fatalf("deleteComment() = %+v, want deleted", resp)
		}

		list, err := m.listByBoard(ctx, ListByBoardRequest{BoardID: "board-1"}, nil)
		if err != nil {
			t.Fatalf("listByBoard() error = %v", err)
		}
		if list.Total != 0 {
			t.Errorf("list.Total = %v, want 0 after delete", list.Total)
		}
	})
}

func TestListByBoard(t *testing.T) {
	m := newTestModule(t, &mockBoardPort{exists: true})
	ctx := context.Background()

	first := createTestComment(t, m, "alice01")
	second, err := m.createComment(ctx, CreateCommentRequest{
		BoardID:    "board-1",
		Content:    "Second",
		AuthorID:   "bob02",
		AuthorName: "Bob",
	}, nil)
	if err != nil || second.Code != "" {
		t.Fatalf("createComment() = %+v, %v", second, err)
	}

	list, err := m.listByBoard(ctx, ListByBoardRequest{BoardID: "board-1"}, nil)
	if err != nil {
		t.Fatalf("listByBoard() error = %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("list.Total = %v, want 2", list.Total)
	}
	seen := map[string]bool{}
	for _, cm := range list.Comments {
		seen[cm.ID] = true
	}
	if !seen[first.ID] || !seen[second.ID] {
		t.Errorf("listByBoard() missing comments: %+v", list.Comments)
	}
}
