package board

import "time"

// CreateBoardRequest is the request for creating a post. AuthorID and
// AuthorName come from the authenticated identity, never from the
// client payload.
type CreateBoardRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
}

// GetBoardRequest is the request for getting a post.
type GetBoardRequest struct {
	ID string `json:"id"`
}

// BoardResponse represents a post in responses. A non-empty Code marks
// an expected failure.
type BoardResponse struct {
	Code       string    `json:"code,omitempty"`
	Message    string    `json:"message,omitempty"`
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content,omitempty"`
	AuthorID   string    `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// ListBoardsRequest is the request for listing posts.
type ListBoardsRequest struct{}

// ListBoardsResponse is the response containing a list of posts.
type ListBoardsResponse struct {
	Boards []BoardResponse `json:"boards"`
	Total  int             `json:"total"`
}

// UpdateBoardRequest is the request for updating a post. CallerID is
// the authenticated identity performing the update.
type UpdateBoardRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	CallerID string `json:"caller_id"`
}

// DeleteBoardRequest is the request for deleting a post.
type DeleteBoardRequest struct {
	ID       string `json:"id"`
	CallerID string `json:"caller_id"`
}

// DeleteBoardResponse is the response after deleting a post.
type DeleteBoardResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Deleted bool   `json:"deleted"`
	ID      string `json:"id,omitempty"`
}

// ExistsBoardRequest is the request for checking that a post exists.
type ExistsBoardRequest struct {
	ID string `json:"id"`
}

// ExistsBoardResponse is the response of an existence check.
type ExistsBoardResponse struct {
	Exists bool `json:"exists"`
}
