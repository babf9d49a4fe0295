// middleware/user_context.go
package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UserContextMiddleware extracts the visitor identity set by the Gateway. The offers
// surface serves anonymous visitors too, so a missing X-User-ID is not an error —
// handlers simply resolve with the anonymous eligibility context.
func UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := c.Get("X-User-ID"); userID != "" {
			c.Locals("user_id", userID)
		}
		return c.Next()
	}
}
