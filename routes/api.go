package routes

import (
	"lezzet.link/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes public JSON uçlarını tanımlar (oturum gerektirmez).
func registerAPIRoutes(app *fiber.App) {
	apiHandler := handlers.NewAPIHandler()

	app.Get("/health", apiHandler.Health)

	apiGroup := app.Group("/api")
	apiGroup.Post("/submit", apiHandler.Submit)
	apiGroup.Get("/public/content", apiHandler.PublicContent)
	apiGroup.Get("/public/theme", apiHandler.PublicTheme)
}
