package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/service"
	"sigtransportes/internal/session"
)

// Services bundles the injected application services for route registration.
type Services struct {
	Auth          service.AuthService
	Documents     service.DocumentService
	Records       service.RecordService
	Dashboard     service.DashboardService
	Notifications service.NotificationService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Everything
// behind the menu requires a live session; /login, /health and /healthz do not.
func RegisterRoutes(app *fiber.App, db *sql.DB, sessions *session.Store, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/login", LoginForm(sessions))
	app.Post("/login", Login(svc.Auth, sessions))
	app.Get("/logout", Logout(sessions))

	authed := app.Group("", middleware.RequireSession(sessions))
	authed.Get("/", Dashboard(svc.Dashboard))
	authed.Get("/documentos", DocumentsPage(svc.Documents))
	authed.Post("/documentos", CreateDocument(svc.Documents))
	authed.Get("/registros", RecordsPage(svc.Records))
	authed.Post("/registros", CreateRecord(svc.Records))
	authed.Get("/alertas", NotificationsPage())
	authed.Post("/alertas", SendNotification(svc.Notifications))
}
