package handlers // handlers/panel paketi

import (
	"lezzet.link/configs/configslog"
	"lezzet.link/pkg/flashmessages"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelThemeHandler tema/renk ayarları ekranını yönetir.
type PanelThemeHandler struct {
	service services.IThemeService
}

// NewPanelThemeHandler yeni bir PanelThemeHandler örneği oluşturur.
func NewPanelThemeHandler() *PanelThemeHandler {
	return &PanelThemeHandler{service: services.NewThemeService()}
}

// ShowTheme mevcut (gerekirse varsayılanlarla oluşturulmuş) temayı gösterir.
func (h *PanelThemeHandler) ShowTheme(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Tema Ayarları"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	theme, err := h.service.GetTheme(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowTheme Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Tema bilgileri alınırken bir hata oluştu."
	}
	renderData["Theme"] = theme

	return renderer.Render(c, "panel/theme", "layouts/panel_layout", renderData)
}

// UpdateTheme tüm renk alanlarını ve modu günceller.
func (h *PanelThemeHandler) UpdateTheme(c *fiber.Ctx) error {
	var input services.ThemeInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/theme", fiber.StatusSeeOther)
	}

	if _, err := h.service.UpdateTheme(c.UserContext(), input); err != nil {
		configslog.Log.Error("Panel - UpdateTheme Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/theme", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tema kaydedildi.")
	return c.Redirect("/panel/theme", fiber.StatusFound)
}
