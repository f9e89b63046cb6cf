package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/session"
)

// SessionLocalKey is the key the authenticated session is stored under in
// Fiber's context locals.
const SessionLocalKey = "session"

// RequireSession guards authenticated views. A request without a live
// session, including one with a stale cookie from a logged-out or restarted
// server, is redirected to the login form; otherwise the session is placed
// in context locals for the handler.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := store.Get(c)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(SessionLocalKey, sess)
		return c.Next()
	}
}

// SessionFromCtx extracts the session stored by RequireSession.
func SessionFromCtx(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(SessionLocalKey).(session.Session)
	return sess, ok
}
