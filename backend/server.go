// Package backend assembles the HTTP API.
package backend

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/habitpet/habitpet/backend/handlers"
	"github.com/habitpet/habitpet/backend/middleware"
	"github.com/habitpet/habitpet/backend/utils"
	"github.com/habitpet/habitpet/internal/config"
)

// NewApp builds the Fiber app with every route mounted.
func NewApp(webApp *handlers.WebApp, cfg config.WebConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "HabitPet API",
		ErrorHandler:          middleware.ErrorHandler,
		BodyLimit:             config.MaxRequestSize,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.LoggingMiddleware())
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	if cfg.AllowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		}))
	}

	setupRoutes(app, webApp, cfg)
	return app
}

func setupRoutes(app *fiber.App, webApp *handlers.WebApp, cfg config.WebConfig) {
	app.Get("/health", handlers.HealthCheck(webApp))

	api := app.Group("/api", middleware.AuthRequired(cfg.JWTSecret))
	if cfg.RateLimit > 0 {
		api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	}

	tasks := api.Group("/tasks")
	tasks.Get("/", handlers.TasksList(webApp))
	tasks.Post("/", handlers.TasksCreate(webApp))
	tasks.Get("/:id", handlers.TasksDetail(webApp))
	tasks.Patch("/:id", handlers.TasksUpdate(webApp))
	tasks.Delete("/:id", handlers.TasksArchive(webApp))
	tasks.Post("/:id/complete", handlers.TasksComplete(webApp))
	tasks.Post("/:id/log", handlers.TasksLog(webApp))
	tasks.Post("/:id/reopen", handlers.TasksReopen(webApp))

	api.Get("/companion", handlers.CompanionDetail(webApp))
	api.Post("/companion/feed", handlers.CompanionFeed(webApp))
	api.Post("/companion/reset", handlers.CompanionReset(webApp))
	api.Get("/companions", handlers.CompanionCollection(webApp))
	api.Get("/titles", handlers.TitlesList(webApp))

	api.Get("/rankings", handlers.RankingsTop(webApp))
	api.Get("/rankings/me", handlers.RankingsMe(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()))
		return utils.SendNotFound(c, "The requested endpoint does not exist")
	})
}
