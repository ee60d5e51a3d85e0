package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirp-social/chirp/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid registration data", err)
	}

	user, err := h.auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusCreated, "account created", user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return HandleError(c, fiber.StatusBadRequest, "invalid login data", err)
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return HandleAppError(c, err)
	}

	return HandleSuccess(c, fiber.StatusOK, "signed in", fiber.Map{
		"token": token,
		"user":  user,
	})
}
