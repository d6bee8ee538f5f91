package comment

import "time"

// CreateCommentRequest is the request for creating a comment. AuthorID
// and AuthorName come from the authenticated identity.
type CreateCommentRequest struct {
	BoardID    string `json:"board_id"`
	Content    string `json:"content"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
}

// CommentResponse represents a comment in responses. A non-empty Code
// marks an expected failure.
type CommentResponse struct {
	Code       string    `json:"code,omitempty"`
	Message    string    `json:"message,omitempty"`
	ID         string    `json:"id,omitempty"`
	BoardID    string    `json:"board_id,omitempty"`
	Content    string    `json:"content,omitempty"`
	AuthorID   string    `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// ListByBoardRequest is the request for listing a post's comments.
type ListByBoardRequest struct {
	BoardID string `json:"board_id"`
}

// ListByBoardResponse is the response containing a post's comments.
type ListByBoardResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}

// UpdateCommentRequest is the request for updating a comment.
type UpdateCommentRequest struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	CallerID string `json:"caller_id"`
}

// DeleteCommentRequest is the request for deleting a comment.
type DeleteCommentRequest struct {
	ID       string `json:"id"`
	CallerID string `json:"caller_id"`
}

// DeleteCommentResponse is the response after deleting a comment.
type DeleteCommentResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Deleted bool   `json:"deleted"`
	ID      string `json:"id,omitempty"`
}
