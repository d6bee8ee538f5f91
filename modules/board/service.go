package board

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/example/board-service/domain/apperr"
	"github.com/example/board-service/domain/authz"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

const (
	maxTitleLen   = 100
	maxContentLen = 4000
)

// validateBoardInput checks title and content constraints shared by
// create and update.
func validateBoardInput(title, content string) (message string, ok bool) {
	switch {
	case strings.TrimSpace(title) == "":
		return "title is required", false
	case len([]rune(title)) > maxTitleLen:
		return "title must be at most 100 characters", false
	case strings.TrimSpace(content) == "":
		return "content is required", false
	case len([]rune(content)) > maxContentLen:
		return "content must be at most 4000 characters", false
	}
	return "", true
}

// createBoard handles the board.create service request.
func (m *BoardModule) createBoard(_ context.Context, req CreateBoardRequest, _ *mono.Msg) (BoardResponse, error) {
	if msg, ok := validateBoardInput(req.Title, req.Content); !ok {
		return BoardResponse{Code: apperr.CodeInvalidArgument, Message: msg}, nil
	}

	b := &Board{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
	}
	b.ID = uuid.New().String()

	if err := m.repo.Create(b); err != nil {
		return BoardResponse{}, err
	}

	log.Printf("[board] Post created: %s by %s", b.ID, b.AuthorID)
	return toBoardResponse(b), nil
}

// getBoard handles the board.get service request.
func (m *BoardModule) getBoard(_ context.Context, req GetBoardRequest, _ *mono.Msg) (BoardResponse, error) {
	b, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return BoardResponse{Code: apperr.CodeNotFound, Message: "board not found"}, nil
		}
		return BoardResponse{}, err
	}
	return toBoardResponse(b), nil
}

// listBoards handles the board.list service request.
func (m *BoardModule) listBoards(_ context.Context, _ ListBoardsRequest, _ *mono.Msg) (ListBoardsResponse, error) {
	boards, err := m.repo.FindAll()
	if err != nil {
		return ListBoardsResponse{}, err
	}

	response := ListBoardsResponse{
		Boards: make([]BoardResponse, 0, len(boards)),
		Total:  len(boards),
	}
	for _, b := range boards {
		response.Boards = append(response.Boards, toBoardResponse(b))
	}
	return response, nil
}

// updateBoard handles the board.update service request. The order is
// fixed: existence, then ownership, then the mutation.
func (m *BoardModule) updateBoard(_ context.Context, req UpdateBoardRequest, _ *mono.Msg) (BoardResponse, error) {
	existing, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return BoardResponse{Code: apperr.CodeNotFound, Message: "board not found"}, nil
		}
		return BoardResponse{}, err
	}

	if !authz.IsOwner(existing.AuthorID, req.CallerID) {
		log.Printf("[board] Rejected update of %s by non-owner %s", req.ID, req.CallerID)
		return BoardResponse{Code: apperr.CodeForbidden, Message: "only the author may update this post"}, nil
	}

	if msg, ok := validateBoardInput(req.Title, req.Content); !ok {
		return BoardResponse{Code: apperr.CodeInvalidArgument, Message: msg}, nil
	}

	existing.Title = req.Title
	existing.Content = req.Content
	if err := m.repo.Update(existing); err != nil {
		return BoardResponse{}, err
	}

	// Re-read so the response carries the timestamp the update wrote.
	updated, err := m.repo.FindByID(req.ID)
	if err != nil {
		return BoardResponse{}, err
	}
	return toBoardResponse(updated), nil
}

// deleteBoard handles the board.delete service request. Same fixed
// order as update: existence, ownership, mutation.
func (m *BoardModule) deleteBoard(_ context.Context, req DeleteBoardRequest, _ *mono.Msg) (DeleteBoardResponse, error) {
	existing, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DeleteBoardResponse{Code: apperr.CodeNotFound, Message: "board not found"}, nil
		}
		return DeleteBoardResponse{}, err
	}

	if !authz.IsOwner(existing.AuthorID, req.CallerID) {
		log.Printf("[board] Rejected delete of %s by non-owner %s", req.ID, req.CallerID)
		return DeleteBoardResponse{Code: apperr.CodeForbidden, Message: "only the author may delete this post"}, nil
	}

	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteBoardResponse{}, err
	}

	log.Printf("[board] Post deleted: %s by %s", req.ID, req.CallerID)
	return DeleteBoardResponse{Deleted: true, ID: req.ID}, nil
}

// existsBoard handles the board.exists service request.
func (m *BoardModule) existsBoard(_ context.Context, req ExistsBoardRequest, _ *mono.Msg) (ExistsBoardResponse, error) {
	_, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ExistsBoardResponse{Exists: false}, nil
		}
		return ExistsBoardResponse{}, err
	}
	return ExistsBoardResponse{Exists: true}, nil
}

func toBoardResponse(b *Board) BoardResponse {
	return BoardResponse{
		ID:         b.ID,
		Title:      b.Title,
		Content:    b.Content,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
