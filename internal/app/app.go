package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/redis/go-redis/v9"

	"auditpdf/internal/config"
	"auditpdf/internal/handlers"
	"auditpdf/internal/logging"
)

// SetupApp creates and configures a new Fiber app instance
func SetupApp(cfg config.Config, redis *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:               cfg.Server.Prefork,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			logging.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

			// Flat envelope: the 400 body for missing fields is part of the
			// endpoint contract.
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})

	RegisterMiddleware(app, cfg)
	RegisterRoutes(app, cfg, redis)

	// Ensure all responses, including 404s, return JSON
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}

// RegisterRoutes mounts all route handlers to the app
func RegisterRoutes(app *fiber.App, cfg config.Config, redis *redis.Client) {
	v1 := app.Group("/v1")

	svc := handlers.NewAuditService(cfg, redis)

	v1.Post("/audit", svc.HandleGenerate)

	v1.Get("/monitor", monitor.New())
}
