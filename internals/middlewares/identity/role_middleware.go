package identity

import (
	"github.com/gofiber/fiber/v2"

	helper "facultyfeedback_backend/internals/helpers"
)

// RequireRoles gates a route group: 401 when no identity resolved,
// 403 when the resolved role is not in the list.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := Email(c)
		if email == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
		}
		role := Role(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return helper.Error(c, fiber.StatusForbidden, "Insufficient role for this resource")
	}
}
