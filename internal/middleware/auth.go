package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected validates the bearer token and stores the authenticated user
// id on the request. The id always comes from the token, never from the
// request body.
func Protected(jwtSecret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(jwtSecret)},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token := c.Locals("user").(*jwt.Token)
			claims := token.Claims.(jwt.MapClaims)

			rawID, ok := claims["user_id"].(float64)
			if !ok || rawID < 1 {
				return unauthorized(c, "user id missing in token")
			}

			c.Locals("user_id", uint(rawID))
			if username, ok := claims["username"].(string); ok {
				c.Locals("username", username)
			}
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "missing or malformed token",
			"error":   err.Error(),
			"data":    nil,
		})
	}
	return unauthorized(c, "invalid or expired token")
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   nil,
		"data":    nil,
	})
}
