package routes

import (
	auth_handlers "lezzet.link/handlers/auth" // İsim çakışmasını önlemek için alias
	"lezzet.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	// Grup middleware'i path önekiyle çalışır; guest kontrolü sadece login
	// rotalarına bağlanır, aksi halde logout da panele yönlendirilirdi.
	authGroup.Get("/login", middlewares.GuestMiddleware, authHandler.ShowLogin)
	authGroup.Post("/login", middlewares.GuestMiddleware, authHandler.Login)

	authGroup.Get("/logout", middlewares.AuthMiddleware, authHandler.Logout)
	authGroup.Post("/logout", middlewares.AuthMiddleware, authHandler.Logout)
}
