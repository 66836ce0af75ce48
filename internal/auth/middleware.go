package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "authIdentity"

// Identity is the decoded bearer identity attached to authenticated requests.
type Identity struct {
	UserID string
	Email  string
}

// RequireAuth extracts and verifies a "Bearer <token>" Authorization header.
// A missing token is 401; a token that fails verification is 403. On success
// the identity is stored in the request locals and the request proceeds.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
			})
		}

		claims, err := ParseSessionToken(secret, token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(identityKey, Identity{UserID: claims.UserID, Email: claims.Email})
		return c.Next()
	}
}

// IdentityFromCtx returns the authenticated identity set by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}
