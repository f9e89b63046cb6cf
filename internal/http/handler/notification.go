package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/service"
)

// NotificationsPage renders the notification form.
func NotificationsPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := middleware.SessionFromCtx(c)
		return c.Render("alertas", fiber.Map{"Session": sess})
	}
}

// SendNotification validates the four form fields and fires the mail send.
// A transport failure is shown to the user with the underlying error text;
// nothing is queued or retried.
func SendNotification(notif service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := middleware.SessionFromCtx(c)

		from := c.FormValue("remitente")
		to := c.FormValue("destinatario")
		subject := c.FormValue("asunto")
		body := c.FormValue("mensaje")

		err := notif.Send(c.UserContext(), from, to, subject, body)
		if err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				return c.Status(fiber.StatusBadRequest).Render("alertas", fiber.Map{
					"Session": sess,
					"Error":   "Complete todos los campos",
				})
			}
			return c.Status(fiber.StatusBadGateway).Render("alertas", fiber.Map{
				"Session": sess,
				"Error":   fmt.Sprintf("No se pudo enviar correo: %v", err),
			})
		}

		return c.Render("alertas", fiber.Map{
			"Session": sess,
			"Success": "Correo enviado",
		})
	}
}
