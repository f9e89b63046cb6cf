package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/service"
	"sigtransportes/internal/session"
)

// LoginForm renders the login view for unauthenticated visitors.
func LoginForm(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Already authenticated sessions go straight to the dashboard.
		if _, ok := sessions.Get(c); ok {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Render("login", fiber.Map{})
	}
}

// Login validates the submitted credentials. Success captures username and
// role in a fresh session; failure re-renders the form with a generic error
// that does not reveal which field was wrong.
func Login(auth service.AuthService, sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.FormValue("username")
		password := c.FormValue("password")

		role, err := auth.Login(c.UserContext(), username, password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
					"Error": "Usuario o contraseña incorrectos",
				})
			}
			return renderError(c, fiber.StatusInternalServerError, "Error interno del servidor")
		}

		if err := sessions.Create(c, username, role); err != nil {
			return renderError(c, fiber.StatusInternalServerError, "Error interno del servidor")
		}
		return c.Redirect("/?bienvenida=1", fiber.StatusSeeOther)
	}
}

// Logout destroys the session and returns to the login form. All per-session
// state is gone afterwards; a stale cookie no longer authenticates.
func Logout(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sessions.Destroy(c); err != nil {
			return renderError(c, fiber.StatusInternalServerError, "Error interno del servidor")
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}
