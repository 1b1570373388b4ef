package routes

import (
	panel_handlers "lezzet.link/handlers/panel"
	"lezzet.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki yönetim rotalarını tanımlar.
// Tüm rotalar oturum gerektirir.
func registerPanelRoutes(app *fiber.App) {
	homeHandler := panel_handlers.NewPanelHomeHandler()
	appointmentHandler := panel_handlers.NewPanelAppointmentHandler()
	contentHandler := panel_handlers.NewPanelContentHandler()
	mediaHandler := panel_handlers.NewPanelMediaHandler()
	themeHandler := panel_handlers.NewPanelThemeHandler()
	settingHandler := panel_handlers.NewPanelSettingHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	// --- Ana Sayfa (özet) ---
	panelGroup.Get("/home", homeHandler.Home)

	// --- Randevular ---
	panelGroup.Get("/appointments", appointmentHandler.ListAppointments)
	panelGroup.Get("/appointments/create", appointmentHandler.ShowCreateAppointment)
	panelGroup.Post("/appointments/create", appointmentHandler.CreateAppointment)
	panelGroup.Get("/appointments/update/:id", appointmentHandler.ShowUpdateAppointment)
	panelGroup.Post("/appointments/update/:id", appointmentHandler.UpdateAppointment)
	panelGroup.Post("/appointments/approve/:id", appointmentHandler.ApproveAppointment)
	panelGroup.Post("/appointments/delete/:id", appointmentHandler.DeleteAppointment)
	panelGroup.Delete("/appointments/delete/:id", appointmentHandler.DeleteAppointment)

	// --- İçerik Metinleri ---
	panelGroup.Get("/content", contentHandler.ShowContent)
	panelGroup.Post("/content", contentHandler.SaveContent)

	// --- Görseller / Videolar ---
	panelGroup.Get("/media", mediaHandler.ListMedia)
	panelGroup.Post("/media/upload", mediaHandler.UploadMedia)
	panelGroup.Post("/media/delete/:id", mediaHandler.DeleteMedia)
	panelGroup.Delete("/media/delete/:id", mediaHandler.DeleteMedia)

	// --- Tema ---
	panelGroup.Get("/theme", themeHandler.ShowTheme)
	panelGroup.Post("/theme", themeHandler.UpdateTheme)

	// --- WhatsApp Ayarları ---
	panelGroup.Get("/settings", settingHandler.ShowSettings)
	panelGroup.Post("/settings", settingHandler.UpdateSettings)
}
