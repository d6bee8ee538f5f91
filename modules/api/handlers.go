package api

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/example/board-service/modules/auth"
	"github.com/example/board-service/modules/board"
	"github.com/example/board-service/modules/comment"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authContainer    mono.ServiceContainer
	boardContainer   mono.ServiceContainer
	commentContainer mono.ServiceContainer
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authContainer, boardContainer, commentContainer mono.ServiceContainer) *Handlers {
	return &Handlers{
		authContainer:    authContainer,
		boardContainer:   boardContainer,
		commentContainer: commentContainer,
	}
}

// Signup handles account creation.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == "" || req.Password == "" {
		return badRequest(c, "User id and password are required")
	}

	authReq := auth.SignupRequest{
		UserID:   req.UserID,
		Password: req.Password,
		Username: req.Username,
		Email:    req.Email,
	}
	var resp auth.SignupResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "signup",
		json.Marshal, json.Unmarshal, &authReq, &resp,
	); err != nil {
		log.Printf("[api] signup failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		UserID:    resp.UserID,
		Username:  resp.Username,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	})
}

// Login handles credential verification and returns the issued token.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == "" || req.Password == "" {
		return badRequest(c, "User id and password are required")
	}

	authReq := auth.LoginRequest{
		UserID:   req.UserID,
		Password: req.Password,
	}
	var resp auth.LoginResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "login",
		json.Marshal, json.Unmarshal, &authReq, &resp,
	); err != nil {
		log.Printf("[api] login failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
		UserInfo: UserInfo{
			UserID:   resp.UserInfo.UserID,
			Username: resp.UserInfo.Username,
			Email:    resp.UserInfo.Email,
			Role:     resp.UserInfo.Role,
		},
	})
}

// ValidateToken reports whether the caller's bearer token verifies.
// Diagnostic endpoint: a missing token and a failed verification both
// answer 400 rather than 401, since nothing is being protected.
func (h *Handlers) ValidateToken(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return badRequest(c, "Missing or malformed bearer token")
	}

	claims := CurrentUser(c)
	if claims == nil {
		return badRequest(c, "Invalid token")
	}

	return c.JSON(ValidateTokenResponse{Valid: true, UserID: claims.UserID})
}

// ListBoards handles listing all posts.
func (h *Handlers) ListBoards(c *fiber.Ctx) error {
	var resp board.ListBoardsResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.boardContainer, "list",
		json.Marshal, json.Unmarshal, &board.ListBoardsRequest{}, &resp,
	); err != nil {
		log.Printf("[api] board list failed: %v", err)
		return serverError(c)
	}

	out := BoardListResponse{
		Boards: make([]BoardResponse, 0, len(resp.Boards)),
		Total:  resp.Total,
	}
	for _, b := range resp.Boards {
		out.Boards = append(out.Boards, toAPIBoard(b))
	}
	return c.JSON(out)
}

// GetBoard handles fetching a post together with its comments.
func (h *Handlers) GetBoard(c *fiber.Ctx) error {
	id := c.Params("id")

	var boardResp board.BoardResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.boardContainer, "get",
		json.Marshal, json.Unmarshal, &board.GetBoardRequest{ID: id}, &boardResp,
	); err != nil {
		log.Printf("[api] board get failed: %v", err)
		return serverError(c)
	}
	if boardResp.Code != "" {
		return failWithCode(c, boardResp.Code, boardResp.Message)
	}

	var commentsResp comment.ListByBoardResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.commentContainer, "list-by-board",
		json.Marshal, json.Unmarshal, &comment.ListByBoardRequest{BoardID: id}, &commentsResp,
	); err != nil {
		log.Printf("[api] comment list failed: %v", err)
		return serverError(c)
	}

	detail := BoardDetailResponse{
		Board:        toAPIBoard(boardResp),
		Comments:     make([]CommentResponse, 0, len(commentsResp.Comments)),
		CommentCount: commentsResp.Total,
	}
	for _, cm := range commentsResp.Comments {
		detail.Comments = append(detail.Comments, toAPIComment(cm))
	}
	return c.JSON(detail)
}

// CreateBoard handles post creation. Requires authentication; the
// author is the authenticated identity.
func (h *Handlers) CreateBoard(c *fiber.Ctx) error {
	claims := CurrentUser(c)

	var req CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	boardReq := board.CreateBoardRequest{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   claims.UserID,
		AuthorName: claims.Username,
	}
	var resp board.BoardResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.boardContainer, "create",
		json.Marshal, json.Unmarshal, &boardReq, &resp,
	); err != nil {
		log.Printf("[api] board create failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.Status(fiber.StatusCreated).JSON(toAPIBoard(resp))
}

// UpdateBoard handles updating a post owned by the caller.
func (h *Handlers) UpdateBoard(c *fiber.Ctx) error {
	claims := CurrentUser(c)

	var req UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	boardReq := board.UpdateBoardRequest{
		ID:       c.Params("id"),
		Title:    req.Title,
		Content:  req.Content,
		CallerID: claims.UserID,
	}
	var resp board.BoardResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.boardContainer, "update",
		json.Marshal, json.Unmarshal, &boardReq, &resp,
	); err != nil {
		log.Printf("[api] board update failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.JSON(toAPIBoard(resp))
}

// DeleteBoard handles deleting a post owned by the caller.
func (h *Handlers) DeleteBoard(c *fiber.Ctx) error {
	claims := CurrentUser(c)

	boardReq := board.DeleteBoardRequest{
		ID:       c.Params("id"),
		CallerID: claims.UserID,
	}
	var resp board.DeleteBoardResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.boardContainer, "delete",
		json.Marshal, json.Unmarshal, &boardReq, &resp,
	); err != nil {
		log.Printf("[api] board delete failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.JSON(DeleteResponse{Deleted: resp.Deleted, ID: resp.ID})
}

// ListComments handles listing the comments of a post.
func (h *Handlers) ListComments(c *fiber.Ctx) error {
	var resp comment.ListByBoardResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.commentContainer, "list-by-board",
		json.Marshal, json.Unmarshal, &comment.ListByBoardRequest{BoardID: c.Params("id")}, &resp,
	); err != nil {
		log.Printf("[api] comment list failed: %v", err)
		return serverError(c)
	}

	out := CommentListResponse{
		Comments: make([]CommentResponse, 0, len(resp.Comments)),
		Total:    resp.Total,
	}
	for _, cm := range resp.Comments {
		out.Comments = append(out.Comments, toAPIComment(cm))
	}
	return c.JSON(out)
}

// CreateComment handles commenting on a post. Requires authentication.
func (h *Handlers) CreateComment(c *fiber.Ctx) error {
	claims := CurrentUser(c)

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	commentReq := comment.CreateCommentRequest{
		BoardID:    c.Params("id"),
		Content:    req.Content,
		AuthorID:   claims.UserID,
		AuthorName: claims.Username,
	}
	var resp comment.CommentResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.commentContainer, "create",
		json.Marshal, json.Unmarshal, &commentReq, &resp,
	); err != nil {
		log.Printf("[api] comment create failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.Status(fiber.StatusCreated).JSON(toAPIComment(resp))
}

// UpdateComment handles updating a comment owned by the caller.
func (h *Handlers) UpdateComment(c *fiber.Ctx) error {
	claims := CurrentUser(c)

	var req UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	commentReq := comment.UpdateCommentRequest{
		ID:       c.Params("id"),
		Content:  req.Content,
		CallerID: claims.UserID,
	}
	var resp comment.CommentResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.commentContainer, "update",
		json.Marshal, json.Unmarshal, &commentReq, &resp,
	); err != nil {
		log.Printf("[api] comment update failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.JSON(toAPIComment(resp))
}

// DeleteComment handles deleting a comment owned by the caller.
func (h *Handlers) DeleteComment(c *fiber.Ctx) error {
	claims := CurrentUser(c)

	commentReq := comment.DeleteCommentRequest{
		ID:       c.Params("id"),
		CallerID: claims.UserID,
	}
	var resp comment.DeleteCommentResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.commentContainer, "delete",
		json.Marshal, json.Unmarshal, &commentReq, &resp,
	); err != nil {
		log.Printf("[api] comment delete failed: %v", err)
		return serverError(c)
	}
	if resp.Code != "" {
		return failWithCode(c, resp.Code, resp.Message)
	}

	return c.JSON(DeleteResponse{Deleted: resp.Deleted, ID: resp.ID})
}

func toAPIBoard(b board.BoardResponse) BoardResponse {
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

func toAPIComment(cm comment.CommentResponse) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		BoardID:    cm.BoardID,
		Content:    cm.Content,
		AuthorID:   cm.AuthorID,
		AuthorName: cm.AuthorName,
		CreatedAt:  cm.CreatedAt,
		UpdatedAt:  cm.UpdatedAt,
	}
}
