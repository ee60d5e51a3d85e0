package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirp-social/chirp/internal/services"
)

type CommentHandler struct {
	posts *services.PostService
}

func NewCommentHandler(posts *services.PostService) *CommentHandler {
	return &CommentHandler{posts: posts}
}

// AddComment handles POST /api/comments/post/:postId.
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	postID, err := c.ParamsInt("postId")
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

	comment, err := h.posts.AddComment(userID, uint(postID), req.Content)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusCreated, "comment added", comment)
}

// EditComment handles PUT /api/comments/:commentId.
func (h *CommentHandler) EditComment(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	commentID, err := c.ParamsInt("commentId")
	if err != nil || commentID < 1 {
		return HandleError(c, fiber.StatusBadRequest, "invalid comment id", err)
	}

	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "content must be 1-280 characters", err)
	}

	comment, err := h.posts.EditComment(userID, uint(commentID), req.Content)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "comment updated", comment)
}

// DeleteComment handles DELETE /api/comments/:commentId.
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	commentID, err := c.ParamsInt("commentId")
	if err != nil || commentID < 1 {
		return HandleError(c, fiber.StatusBadRequest, "invalid comment id", err)
	}

	if err := h.posts.DeleteComment(userID, uint(commentID)); err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "comment deleted", nil)
}
