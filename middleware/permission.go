package middleware

import (
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequirePermission returns a middleware that lets the request through
// only when the caller's role holds every listed permission. The role
// comes from the JWT claims set by JWTMiddleware; the role-to-permission
// mapping is the fixed enumeration in models.
func RequirePermission(permissions ...models.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		if !models.CheckIfUserCan(role, permissions...) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}
