package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaushl12/TaskCanvas/auth"
)

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "token"

// UserIDKey is the fiber locals key under which RequireAuth stores the
// authenticated user id (int64).
const UserIDKey = "user_id"

// RequireAuth verifies the token header and binds the user id into the
// request locals. A missing token is 401, an unverifiable one is 403;
// either way no downstream handler runs.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(TokenHeader)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "token missing"})
		}

		userID, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "invalid or expired token"})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the identity bound by RequireAuth, or 0 when the route
// was not protected.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}
