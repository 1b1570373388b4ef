package handlers

import (
	"errors"

	"lezzet.link/configs/configslog"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIHandler public JSON uçlarını yönetir: form gönderimi, içerik ve tema okuma.
type APIHandler struct {
	appointmentService services.IAppointmentService
	settingService     services.ISettingService
	contentService     services.IContentService
	themeService       services.IThemeService
	notifier           services.Notifier
}

// NewAPIHandler yeni bir APIHandler örneği oluşturur. Bildirim stratejisi
// uygulama başında ortam değişkenlerinden bir kez seçilir.
func NewAPIHandler() *APIHandler {
	return NewAPIHandlerWith(
		services.NewAppointmentService(),
		services.NewSettingService(),
		services.NewContentService(),
		services.NewThemeService(),
		services.NewNotifierFromEnv(),
	)
}

// NewAPIHandlerWith bağımlılıkları dışarıdan alır (testler için).
func NewAPIHandlerWith(
	appointmentService services.IAppointmentService,
	settingService services.ISettingService,
	contentService services.IContentService,
	themeService services.IThemeService,
	notifier services.Notifier,
) *APIHandler {
	return &APIHandler{
		appointmentService: appointmentService,
		settingService:     settingService,
		contentService:     contentService,
		themeService:       themeService,
		notifier:           notifier,
	}
}

// Submit rezervasyon formunu işler: kaydı persiste eder, ardından bildirimi
// dağıtır. Bildirim hatası kaydı geri almaz; 500 ile raporlanır.
func (h *APIHandler) Submit(c *fiber.Ctx) error {
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and phone are required."})
	}

	appointment, err := h.appointmentService.CreateAppointment(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNameRequired) || errors.Is(err, services.ErrAppointmentPhoneRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and phone are required."})
		}
		configslog.Log.Error("Submit: randevu oluşturulamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	setting, err := h.settingService.GetSetting(c.UserContext())
	if err != nil {
		configslog.Log.Error("Submit: ayarlar yüklenemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	result, err := h.notifier.Notify(c.UserContext(), setting, services.Submission{
		Name:    appointment.Name,
		Phone:   appointment.Phone,
		Date:    input.Date,
		Message: input.Message,
	})
	if err != nil {
		// Randevu kaydedildi; sadece bildirim tarafı başarısız.
		configslog.Log.Error("Submit: bildirim gönderilemedi",
			zap.Uint("appointmentID", appointment.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	if result.RedirectURL != "" {
		return c.JSON(fiber.Map{"ok": true, "redirect": result.RedirectURL, "id": appointment.ID})
	}
	return c.JSON(fiber.Map{"ok": true, "id": appointment.ID})
}

// PublicContent site metinlerini anahtar -> gövde olarak döndürür.
func (h *APIHandler) PublicContent(c *fiber.Ctx) error {
	content, err := h.contentService.GetPublicContentMap(c.UserContext())
	if err != nil {
		configslog.Log.Error("PublicContent: içerik okunamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "content": content})
}

// PublicTheme aktif tema renklerini döndürür.
func (h *APIHandler) PublicTheme(c *fiber.Ctx) error {
	theme, err := h.themeService.GetTheme(c.UserContext())
	if err != nil {
		configslog.Log.Error("PublicTheme: tema okunamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "theme": fiber.Map{
		"primary":    theme.Primary,
		"secondary":  theme.Secondary,
		"background": theme.Background,
		"text":       theme.Text,
		"mode":       theme.Mode,
	}})
}

// Health sağlık kontrolü.
func (h *APIHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
