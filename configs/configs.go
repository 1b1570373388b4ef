package configs

import (
	"time"

	"lezzet.link/configs/configsdatabase"

	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// GetDB repository katmanının kullandığı global bağlantıyı döndürür.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// SetupSession cookie tabanlı session store'u oluşturur.
// Orijinal siteyle aynı şekilde 4 saatlik oturum süresi kullanılır.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     4 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
