package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/service"
)

// Dashboard renders the document aggregates: a bar chart of counts per area
// and a line chart of counts per creation date. With no documents cataloged
// the view shows an informational placeholder instead of charts.
func Dashboard(dash service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := middleware.SessionFromCtx(c)

		stats, err := dash.Stats(c.UserContext())
		if err != nil {
			return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los documentos")
		}

		data := fiber.Map{
			"Session": sess,
			"Stats":   stats,
		}
		if c.Query("bienvenida") != "" {
			data["Welcome"] = fmt.Sprintf("Bienvenido %s (%s)", sess.Username, sess.Role)
		}
		return c.Render("dashboard", data)
	}
}
