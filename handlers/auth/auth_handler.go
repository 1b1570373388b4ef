package handlers // handlers/auth paketi

import (
	"errors"

	"lezzet.link/configs/configslog"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"
	"lezzet.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler admin giriş/çıkış işlemlerini yönetir.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Giriş",
	})
}

// Login kullanıcı adı ve şifreyi doğrular. Hangi alanın yanlış olduğu
// söylenmez; her iki durumda da aynı genel mesaj gösterilir.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.UserContext(), username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login: doğrulama sırasında hata", zap.Error(err))
		}
		return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
			"Title": "Giriş",
			renderer.FlashErrorKeyView: "Geçersiz bilgiler",
		}, fiber.StatusUnauthorized)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetUserSession(sess, user.ID, user.Username); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/panel/home", fiber.StatusFound)
}

// Logout oturumu sonlandırır ve giriş sayfasına döner.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.DestroySession(c); err != nil {
		configslog.Log.Warn("Logout: session sonlandırılamadı", zap.Error(err))
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
