package comment

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

const maxCommentLen = 500

func validateCommentInput(content string) (message string, ok bool) {
	switch {
	case strings.TrimSpace(content) == "":
		return "content is required", false
	case len([]rune(content)) > maxCommentLen:
		return "content must be at most 500 characters", false
	}
	return "", true
}

// createComment handles the comment.create service request. The target
// post must exist; the check goes through the board port.
func (m *CommentModule) createComment(ctx context.Context, req CreateCommentRequest, _ *mono.Msg) (CommentResponse, error) {
	if msg, ok := validateCommentInput(req.Content); !ok {
		return CommentResponse{Code: apperr.CodeInvalidArgument, Message: msg}, nil
	}

	exists, err := m.boards.Exists(ctx, req.BoardID)
	if err != nil {
		return CommentResponse{}, err
	}
	if !exists {
		return CommentResponse{Code: apperr.CodeNotFound, Message: "board not found"}, nil
	}

	c := &Comment{
		BoardID:    req.BoardID,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
	}
	c.ID = uuid.New().String()

	if err := m.repo.Create(c); err != nil {
		return CommentResponse{}, err
	}

	log.Printf("[comment] Comment created: %s on board %s by %s", c.ID, c.BoardID, c.AuthorID)
	return toCommentResponse(c), nil
}

// listByBoard handles the comment.list-by-board service request.
func (m *CommentModule) listByBoard(_ context.Context, req ListByBoardRequest, _ *mono.Msg) (ListByBoardResponse, error) {
	comments, err := m.repo.FindByBoardID(req.BoardID)
	if err != nil {
		return ListByBoardResponse{}, err
	}

	response := ListByBoardResponse{
		Comments: make([]CommentResponse, 0, len(comments)),
		Total:    len(comments),
	}
	for _, c := range comments {
		response.Comments = append(response.Comments, toCommentResponse(c))
	}
	return response, nil
}

// updateComment handles the comment.update service request. Existence
// is checked before ownership, then the mutation runs.
func (m *CommentModule) updateComment(_ context.Context, req UpdateCommentRequest, _ *mono.Msg) (CommentResponse, error) {
	existing, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CommentResponse{Code: apperr.CodeNotFound, Message: "comment not found"}, nil
		}
		return CommentResponse{}, err
	}

	if !authz.IsOwner(existing.AuthorID, req.CallerID) {
		log.Printf("[comment] Rejected update of %s by non-owner %s", req.ID, req.CallerID)
		return CommentResponse{Code: apperr.CodeForbidden, Message: "only the author may update this comment"}, nil
	}

	if msg, ok := validateCommentInput(req.Content); !ok {
		return CommentResponse{Code: apperr.CodeInvalidArgument, Message: msg}, nil
	}

	existing.Content = req.Content
	if err := m.repo.Update(existing); err != nil {
		return CommentResponse{}, err
	}

	// Re-read so the response carries the timestamp the update wrote.
	updated, err := m.repo.FindByID(req.ID)
	if err != nil {
		return CommentResponse{}, err
	}
	return toCommentResponse(updated), nil
}

// deleteComment handles the comment.delete service request.
func (m *CommentModule) deleteComment(_ context.Context, req DeleteCommentRequest, _ *mono.Msg) (DeleteCommentResponse, error) {
	existing, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DeleteCommentResponse{Code: apperr.CodeNotFound, Message: "comment not found"}, nil
		}
		return DeleteCommentResponse{}, err
	}

	if !authz.IsOwner(existing.AuthorID, req.CallerID) {
		log.Printf("[comment] Rejected delete of %s by non-owner %s", req.ID, req.CallerID)
		return DeleteCommentResponse{Code: apperr.CodeForbidden, Message: "only the author may delete this comment"}, nil
	}

	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteCommentResponse{}, err
	}

	log.Printf("[comment] Comment deleted: %s by %s", req.ID, req.CallerID)
	return DeleteCommentResponse{Deleted: true, ID: req.ID}, nil
}

func toCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		BoardID:    c.BoardID,
		Content:    c.Content,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
