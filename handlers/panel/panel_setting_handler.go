package handlers // handlers/panel paketi

import (
	"lezzet.link/configs/configslog"
	"lezzet.link/pkg/flashmessages"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelSettingHandler WhatsApp ayarları ekranını yönetir.
type PanelSettingHandler struct {
	service services.ISettingService
}

// NewPanelSettingHandler yeni bir PanelSettingHandler örneği oluşturur.
func NewPanelSettingHandler() *PanelSettingHandler {
	return &PanelSettingHandler{service: services.NewSettingService()}
}

// ShowSettings mevcut (gerekirse varsayılanlarla oluşturulmuş) ayarları gösterir.
func (h *PanelSettingHandler) ShowSettings(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "WhatsApp Ayarları"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	setting, err := h.service.GetSetting(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowSettings Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Ayarlar alınırken bir hata oluştu."
	}
	renderData["Setting"] = setting

	return renderer.Render(c, "panel/settings", "layouts/panel_layout", renderData)
}

// UpdateSettings numara ve mesaj şablonunu günceller.
func (h *PanelSettingHandler) UpdateSettings(c *fiber.Ctx) error {
	number := c.FormValue("whatsappNumber")
	template := c.FormValue("messageTemplate")

	if _, err := h.service.UpdateSetting(c.UserContext(), number, template); err != nil {
		configslog.Log.Error("Panel - UpdateSettings Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/settings", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Ayarlar kaydedildi.")
	return c.Redirect("/panel/settings", fiber.StatusFound)
}
