package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawBearerToken returns the bearer credential from:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawBearerToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
