package handlers // handlers/panel paketi

import (
	"errors"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/pkg/flashmessages"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelMediaHandler görsel/video yükleme ekranlarını yönetir.
type PanelMediaHandler struct {
	service services.IMediaService
}

// NewPanelMediaHandler yeni bir PanelMediaHandler örneği oluşturur.
func NewPanelMediaHandler() *PanelMediaHandler {
	return &PanelMediaHandler{service: services.NewMediaService()}
}

// ListMedia yüklenen medyayı en yeniden eskiye listeler.
func (h *PanelMediaHandler) ListMedia(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Görseller ve Videolar"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	list, err := h.service.ListMedia(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ListMedia Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Medya listesi alınırken bir hata oluştu."
		list = []models.Media{}
	}
	renderData["List"] = list

	return renderer.Render(c, "panel/media", "layouts/panel_layout", renderData)
}

// UploadMedia multipart dosyayı diske yazar ve kaydını oluşturur.
// Dosya gelmemişse sessizce listeye döner (orijinal davranış).
func (h *PanelMediaHandler) UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return c.Redirect("/panel/media", fiber.StatusSeeOther)
	}

	media, diskPath := h.service.PrepareUpload(
		c.FormValue("title"),
		file.Filename,
		file.Header.Get("Content-Type"),
	)

	if err := c.SaveFile(file, diskPath); err != nil {
		configslog.Log.Error("Panel - UploadMedia: dosya yazılamadı", zap.String("path", diskPath), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Dosya kaydedilemedi.")
		return c.Redirect("/panel/media", fiber.StatusSeeOther)
	}

	if err := h.service.CreateMedia(c.UserContext(), media); err != nil {
		configslog.Log.Error("Panel - UploadMedia: kayıt oluşturulamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/media", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Dosya yüklendi.")
	return c.Redirect("/panel/media", fiber.StatusFound)
}

// DeleteMedia kaydı ve diskteki dosyayı (best-effort) siler.
func (h *PanelMediaHandler) DeleteMedia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/media", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteMedia(c.UserContext(), uint(id)); err != nil {
		if !errors.Is(err, services.ErrMediaNotFound) {
			configslog.Log.Error("Panel - DeleteMedia Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/media", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Medya silindi.")
	return c.Redirect("/panel/media", fiber.StatusFound)
}
