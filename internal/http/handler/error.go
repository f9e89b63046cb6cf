package handler

import (
	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/http/middleware"
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// renderError shows the error page with a safe, human-readable message.
// Internal error details are never leaked to the page.
func renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Message":   message,
		"RequestID": requestIDFromCtx(c),
	})
}

// ErrorHandler returns a Fiber global error handler that renders the error
// page for anything a route handler did not handle itself.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return renderError(c, status, "Página no encontrada")
		case fiber.StatusMethodNotAllowed:
			return renderError(c, status, "Método no permitido")
		default:
			return renderError(c, status, "Error interno del servidor")
		}
	}
}
