package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sigtransportes/internal/config"
	"sigtransportes/internal/database"
	"sigtransportes/internal/database/migration"
	handlers "sigtransportes/internal/http/handler"
	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/http/view"
	"sigtransportes/internal/mail"
	"sigtransportes/internal/otel"
	"sigtransportes/internal/repository/postgres"
	"sigtransportes/internal/service"
	"sigtransportes/internal/session"
	"sigtransportes/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing is env-configured and degrades to a noop provider.
	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create-if-absent schema; safe on every start.
	if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)
	recRepo := postgres.NewRecordPostgres(db)

	// Re-assert the three fixed accounts; existing usernames are no-ops.
	if err := service.EnsureSeedUsers(ctx, userRepo, cfg.BcryptCost); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}

	svc := handlers.Services{
		Auth:          service.NewAuthService(userRepo),
		Documents:     service.NewDocumentService(objStore, docRepo),
		Records:       service.NewRecordService(recRepo),
		Dashboard:     service.NewDashboardService(docRepo),
		Notifications: service.NewNotificationService(mail.NewSMTP(cfg.SMTP)),
	}

	sessions := session.NewStore()

	app := fiber.New(fiber.Config{
		Views:        view.NewEngine(),
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	// Prometheus request counter with a dedicated registry exposed on /metrics
	registry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, sessions, svc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
