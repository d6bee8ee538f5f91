package api

import "time"

// SignupRequest represents an account creation request.
type SignupRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// UserInfo is the redacted account summary returned on login.
type UserInfo struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse represents a login response with the issued token.
type LoginResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"`
	UserInfo    UserInfo `json:"userInfo"`
}

// UserResponse represents a created account.
type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBoardRequest represents a post creation request. The author is
// taken from the authenticated identity, not from the body.
type CreateBoardRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateBoardRequest represents a post update request.
type UpdateBoardRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BoardResponse represents a post.
type BoardResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BoardListResponse represents a list of posts.
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
	Total  int             `json:"total"`
}

// BoardDetailResponse represents a post together with its comments.
type BoardDetailResponse struct {
	Board        BoardResponse     `json:"board"`
	Comments     []CommentResponse `json:"comments"`
	CommentCount int               `json:"commentCount"`
}

// CreateCommentRequest represents a comment creation request.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest represents a comment update request.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse represents a comment.
type CommentResponse struct {
	ID         string    `json:"id"`
	BoardID    string    `json:"boardId"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CommentListResponse represents a list of comments.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}

// DeleteResponse represents a successful delete.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ValidateTokenResponse reports the outcome of a token diagnostic check.
type ValidateTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"userId,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
