package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/types"
)

// AuthUser validates the session cookie and stores the session context
// object in locals for the handler.
func AuthUser(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(services.SessionCookie)
		if token == "" {
			return types.NewCustomError(fiber.StatusUnauthorized, "auth.session.missing",
				"Session cookie %q not found", services.SessionCookie)
		}

		session, err := sessions.Validate(token)
		if err != nil {
			return types.NewCustomError(fiber.StatusUnauthorized, "auth.session.invalid",
				"Invalid session: %v", err)
		}

		c.Locals("session", session)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by AuthUser, or nil when the
// route ran without the middleware.
func SessionFromCtx(c *fiber.Ctx) *services.Session {
	session, _ := c.Locals("session").(*services.Session)
	return session
}
