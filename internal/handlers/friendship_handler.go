package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirp-social/chirp/internal/services"
)

type FriendshipHandler struct {
	friendships *services.FriendshipService
}

func NewFriendshipHandler(friendships *services.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendships: friendships}
}

// SendRequest handles POST /api/friendships/send/:username.
func (h *FriendshipHandler) SendRequest(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	friendship, err := h.friendships.RequestFriendship(userID, c.Params("username"))
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "friend request sent", friendship)
}

// AcceptRequest handles PUT /api/friendships/accept/:username.
func (h *FriendshipHandler) AcceptRequest(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	friendship, err := h.friendships.AcceptRequest(userID, c.Params("username"))
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "friend request accepted", friendship)
}

// RejectRequest handles DELETE /api/friendships/reject/:username.
func (h *FriendshipHandler) RejectRequest(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	if err := h.friendships.RejectRequest(userID, c.Params("username")); err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "friend request rejected", nil)
}

// ListFriends handles GET /api/friendships/friends.
func (h *FriendshipHandler) ListFriends(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	friends, err := h.friendships.ListFriends(userID)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "friends retrieved", friends)
}

// ListPendingRequests handles GET /api/friendships/requests.
func (h *FriendshipHandler) ListPendingRequests(c *fiber.Ctx) error {
	userID, ok := authUserID(c)
	if !ok {
		return HandleError(c, fiber.StatusUnauthorized, "missing authenticated user", nil)
	}

	requests, err := h.friendships.ListPendingRequests(userID)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "pending requests retrieved", requests)
}
