package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware oturum açmamış istekleri giriş sayfasına yönlendirir.
// userID, session middleware'i tarafından locals'a konur.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıları login sayfasından panele döndürür.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/home", fiber.StatusFound)
	}
	return c.Next()
}
