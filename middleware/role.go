package middleware

import (
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that lets the request through only when
// the token role matches. Must run after JWTMiddleware.
func RequireRole(required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Authorization token missing or invalid.", nil)
		}

		if role != required {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}
