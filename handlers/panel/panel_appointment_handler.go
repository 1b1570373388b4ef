package handlers // handlers/panel paketi

import (
	"errors"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/pkg/flashmessages"
	"lezzet.link/pkg/queryparams"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelAppointmentHandler randevu yönetimi ekranlarını yönetir.
type PanelAppointmentHandler struct {
	service services.IAppointmentService
}

// NewPanelAppointmentHandler yeni bir PanelAppointmentHandler örneği oluşturur.
func NewPanelAppointmentHandler() *PanelAppointmentHandler {
	return &PanelAppointmentHandler{service: services.NewAppointmentService()}
}

// ListAppointments isim ve gün filtreleriyle randevuları listeler.
func (h *PanelAppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetAppointments(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Randevular",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Randevular listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Appointment{}}
		configslog.Log.Error("Panel - ListAppointments Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/appointments/list", "layouts/panel_layout", renderData)
}

// ShowCreateAppointment manuel randevu oluşturma formunu gösterir.
func (h *PanelAppointmentHandler) ShowCreateAppointment(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/appointments/create", "layouts/panel_layout", fiber.Map{
		"Title":    "Yeni Randevu",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// CreateAppointment panelden manuel randevu ekler.
func (h *PanelAppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/appointments/create", fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateAppointment(c.UserContext(), input); err != nil {
		if !isAppointmentValidationError(err) {
			configslog.Log.Error("Panel - CreateAppointment Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/panel/appointments/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu oluşturuldu.")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

// ShowUpdateAppointment düzenleme formunu gösterir.
func (h *PanelAppointmentHandler) ShowUpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	appointment, err := h.service.GetAppointmentByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Randevu bulunamadı."
		if !errors.Is(err, services.ErrAppointmentNotFound) {
			errMsg = "Randevu bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateAppointment Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	return renderer.Render(c, "panel/appointments/update", "layouts/panel_layout", fiber.Map{
		"Title":       "Randevu Düzenle",
		"Appointment": appointment,
		"FormData":    flashmessages.GetFlashFormData(c),
	})
}

// UpdateAppointment alanları ve durumu günceller.
func (h *PanelAppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	if err := h.service.UpdateAppointment(c.UserContext(), uint(id), input); err != nil {
		if !isAppointmentValidationError(err) && !errors.Is(err, services.ErrAppointmentNotFound) {
			configslog.Log.Error("Panel - UpdateAppointment Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu güncellendi.")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

// ApproveAppointment randevuyu contacted durumuna geçirir.
func (h *PanelAppointmentHandler) ApproveAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	if err := h.service.ApproveAppointment(c.UserContext(), uint(id)); err != nil {
		if !errors.Is(err, services.ErrAppointmentNotFound) {
			configslog.Log.Error("Panel - ApproveAppointment Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu iletişime geçildi olarak işaretlendi.")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

// DeleteAppointment randevuyu siler.
func (h *PanelAppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteAppointment(c.UserContext(), uint(id)); err != nil {
		if !errors.Is(err, services.ErrAppointmentNotFound) {
			configslog.Log.Error("Panel - DeleteAppointment Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu silindi.")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

func isAppointmentValidationError(err error) bool {
	return errors.Is(err, services.ErrAppointmentNameRequired) ||
		errors.Is(err, services.ErrAppointmentPhoneRequired)
}
