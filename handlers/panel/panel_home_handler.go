package handlers // handlers/panel paketi

import (
	"lezzet.link/configs/configslog"
	"lezzet.link/pkg/flashmessages"
	"lezzet.link/pkg/renderer"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler panel ana sayfasını (özet) yönetir.
type PanelHomeHandler struct {
	appointmentService services.IAppointmentService
}

// NewPanelHomeHandler yeni bir PanelHomeHandler örneği oluşturur.
func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{appointmentService: services.NewAppointmentService()}
}

// Home randevu sayıları ve son kayıtlarla özet sayfasını gösterir.
func (h *PanelHomeHandler) Home(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Panel"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	summary, err := h.appointmentService.GetDashboardSummary(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - Home Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Özet bilgileri alınırken bir hata oluştu."
		summary = &services.DashboardSummary{}
	}
	renderData["Summary"] = summary

	return renderer.Render(c, "panel/home", "layouts/panel_layout", renderData)
}
