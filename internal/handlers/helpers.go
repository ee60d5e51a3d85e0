package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/chirp-social/chirp/pkg/errors"
)

var validate = validator.New()

// HandleSuccess sends the structured JSON envelope for successful
// requests.
func HandleSuccess(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"error":   nil,
		"data":    data,
	})
}

// HandleError sends the structured JSON envelope for errors.
func HandleError(c *fiber.Ctx, statusCode int, message string, err error) error {
	var errText interface{}
	if err != nil {
		errText = err.Error()
	}
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   errText,
		"data":    nil,
	})
}

// HandleAppError maps a service error to its HTTP status and sends the
// error envelope. Business-rule errors are surfaced verbatim.
func HandleAppError(c *fiber.Ctx, err error) error {
	return HandleError(c, statusForCode(errors.CodeOf(err)), messageOf(err), err)
}

func statusForCode(code string) int {
	switch code {
	case errors.ErrCodeValidation,
		errors.ErrCodeSelfReference,
		errors.ErrCodeAlreadyRequested,
		errors.ErrCodeAlreadyExists:
		return fiber.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return fiber.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return fiber.StatusForbidden
	case errors.ErrCodeNotFound, errors.ErrCodeNoPendingRequest:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func messageOf(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return "internal error"
}

// authUserID reads the authenticated user id the JWT middleware stored
// on the request.
func authUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("user_id").(uint)
	return userID, ok && userID != 0
}
