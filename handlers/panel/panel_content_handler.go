package handlers // handlers/panel paketi

import (
	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/pkg/flashmessages"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelContentHandler içerik metinleri editörünü yönetir.
type PanelContentHandler struct {
	service services.IContentService
}

// NewPanelContentHandler yeni bir PanelContentHandler örneği oluşturur.
func NewPanelContentHandler() *PanelContentHandler {
	return &PanelContentHandler{service: services.NewContentService()}
}

// ShowContent sabit anahtar setini editörde gösterir.
func (h *PanelContentHandler) ShowContent(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "İçerik Yönetimi", "Keys": models.ContentKeys}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	content, err := h.service.GetEditorContent(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowContent Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "İçerikler alınırken bir hata oluştu."
		content = map[string]models.Content{}
	}
	renderData["Content"] = content

	return renderer.Render(c, "panel/content", "layouts/panel_layout", renderData)
}

// SaveContent formdaki her sabit anahtarın gövdesini upsert eder.
func (h *PanelContentHandler) SaveContent(c *fiber.Ctx) error {
	values := make(map[string]string, len(models.ContentKeys))
	for _, key := range models.ContentKeys {
		values[key] = c.FormValue(key)
	}

	if err := h.service.SaveContent(c.UserContext(), values); err != nil {
		configslog.Log.Error("Panel - SaveContent Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İçerikler kaydedilirken bir hata oluştu.")
		return c.Redirect("/panel/content", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "İçerikler kaydedildi.")
	return c.Redirect("/panel/content", fiber.StatusFound)
}
