package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirp-social/chirp/internal/services"
	"github.com/chirp-social/chirp/pkg/pagination"
)

type PostHandler struct {
	posts *services.PostService
	feed  *services.FeedService
}

func NewPostHandler(posts *services.PostService, feed *services.FeedService) *PostHandler {
	return &PostHandler{posts: posts, feed: feed}
}

type contentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

// CreatePost handles POST /api/posts/create.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "content must be 1-280 characters", err)
	}

	post, err := h.posts.CreatePost(userID, req.Content)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusCreated, "post created", post)
}

// EditPost handles PUT /api/posts/edit/:id.
func (h *PostHandler) EditPost(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	postID, err := c.ParamsInt("id")
	if err != nil || postID < 1 {
		return HandleError(c, fiber.StatusBadRequest, "invalid post id", err)
	}

	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "content must be 1-280 characters", err)
	}

	post, err := h.posts.EditPost(userID, uint(postID), req.Content)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "post updated", post)
}

// DeletePost handles DELETE /api/posts/:id.
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	postID, err := c.ParamsInt("id")
	if err != nil || postID < 1 {
		return HandleError(c, fiber.StatusBadRequest, "invalid post id", err)
	}

	if err := h.posts.DeletePost(userID, uint(postID)); err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "post deleted", nil)
}

// GetPost handles GET /api/posts/:id.
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil || postID < 1 {
		return HandleError(c, fiber.StatusBadRequest, "invalid post id", err)
	}

	post, err := h.posts.GetPost(uint(postID))
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "post retrieved", post)
}

// ToggleLike handles POST /api/posts/like/:id.
func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	postID, err := c.ParamsInt("id")
	if err != nil || postID < 1 {
		return HandleError(c, fiber.StatusBadRequest, "invalid post id", err)
	}

	result, err := h.posts.ToggleLike(userID, uint(postID))
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "like toggled", result)
}

// GetPostsByUser handles GET /api/posts/user/:username.
func (h *PostHandler) GetPostsByUser(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	var params pagination.QueryParams
	if err := c.QueryParser(&params); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid pagination parameters", err)
	}

	result, err := h.feed.GetPostsByUser(userID, c.Params("username"), params)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "posts retrieved", result)
}

// GetFeed handles GET /api/posts/feed.
func (h *PostHandler) GetFeed(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	var params pagination.QueryParams
	if err := c.QueryParser(&params); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid pagination parameters", err)
	}

	result, err := h.feed.GetFriendFeed(userID, params)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "feed retrieved", result)
}
