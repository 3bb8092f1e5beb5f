package app

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jayt9/article-downloader/internal/handlers"
	"github.com/jayt9/article-downloader/internal/pipeline"
	u "github.com/jayt9/article-downloader/internal/utils"
)

// SetupApp creates and configures a new Fiber app instance
func SetupApp(cfg u.Config) *fiber.App {
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

			u.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

			return c.Status(code).JSON(fiber.Map{"detail": msg})
		},
	})

	RegisterMiddleware(app)
	RegisterRoutes(app, cfg)

	// Ensure all responses, including 404s, return JSON
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}

// RegisterRoutes mounts all route handlers to the app
func RegisterRoutes(app *fiber.App, cfg u.Config) {
	svc := handlers.NewArticleService(cfg, pipeline.NewDefault(cfg))

	app.Get("/health", svc.HandleHealth)
	app.Post("/process-article", svc.HandleProcessArticle)
}
