package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lezzet.link/configs/configsdatabase"
	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubNotifier struct {
	result      *services.NotifyResult
	err         error
	calls       int
	lastSetting *models.Setting
	lastData    services.Submission
}

func (s *stubNotifier) Notify(_ context.Context, setting *models.Setting, data services.Submission) (*services.NotifyResult, error) {
	s.calls++
	s.lastSetting = setting
	s.lastData = data
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &services.NotifyResult{}, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configslog.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Setting{},
		&models.Content{},
		&models.Theme{},
		&models.Media{},
	)
	if err != nil {
		t.Fatalf("test migrasyonu başarısız: %v", err)
	}

	configsdatabase.SetDB(db)
	return db
}

func newTestApp(t *testing.T, notifier services.Notifier) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	handler := NewAPIHandlerWith(
		services.NewAppointmentService(),
		services.NewSettingService(),
		services.NewContentService(),
		services.NewThemeService(),
		notifier,
	)

	app := fiber.New()
	app.Get("/health", handler.Health)
	app.Post("/api/submit", handler.Submit)
	app.Get("/api/public/content", handler.PublicContent)
	app.Get("/api/public/theme", handler.PublicTheme)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("yanıt gövdesi çözülemedi: %v", err)
	}
	return body
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	notifier := &stubNotifier{}
	app, db := newTestApp(t, notifier)

	for _, body := range []string{
		`{}`,
		`{"name":"Ali"}`,
		`{"phone":"555"}`,
		`{"name":"   ","phone":"555"}`,
	} {
		resp := postJSON(t, app, "/api/submit", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, resp.StatusCode)
		}
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Errorf("geçersiz gönderimler kayıt oluşturdu: %d", count)
	}
	if notifier.calls != 0 {
		t.Errorf("geçersiz gönderimde bildirim çağrıldı: %d", notifier.calls)
	}
}

func TestSubmitPersistsAndRedirects(t *testing.T) {
	notifier := &stubNotifier{result: &services.NotifyResult{
		RedirectURL: "https://api.whatsapp.com/send?phone=905551112233&text=x",
	}}
	app, db := newTestApp(t, notifier)
	t.Setenv("WHATSAPP_NUMBER", "905551112233")

	resp := postJSON(t, app, "/api/submit", `{"name":"Ali Veli","phone":"5551112233","date":"2026-04-01","message":"pencere kenarı"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["ok"] != true {
		t.Errorf("ok = %v", body["ok"])
	}
	if body["redirect"] != "https://api.whatsapp.com/send?phone=905551112233&text=x" {
		t.Errorf("redirect = %v", body["redirect"])
	}
	if body["id"] == nil {
		t.Error("yanıtta id yok")
	}

	var appointment models.Appointment
	if err := db.First(&appointment).Error; err != nil {
		t.Fatalf("kayıt bulunamadı: %v", err)
	}
	if appointment.Status != models.AppointmentStatusPending {
		t.Errorf("Status = %q, want %q", appointment.Status, models.AppointmentStatusPending)
	}
	if notifier.calls != 1 {
		t.Errorf("bildirim çağrı sayısı = %d, want 1", notifier.calls)
	}
	if notifier.lastData.Name != "Ali Veli" || notifier.lastData.Date != "2026-04-01" {
		t.Errorf("bildirime giden veri = %+v", notifier.lastData)
	}
}

func TestSubmitWithoutRedirectOmitsField(t *testing.T) {
	app, _ := newTestApp(t, &stubNotifier{})

	resp := postJSON(t, app, "/api/submit", `{"name":"Ali","phone":"555"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if _, exists := body["redirect"]; exists {
		t.Errorf("redirect alanı beklenmiyordu: %v", body["redirect"])
	}
}

func TestSubmitKeepsRecordWhenNotificationFails(t *testing.T) {
	notifier := &stubNotifier{err: services.ErrNotificationFailed}
	app, db := newTestApp(t, notifier)

	resp := postJSON(t, app, "/api/submit", `{"name":"Ali","phone":"555"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	// Bildirim başarısız olsa da kayıt geri alınmaz.
	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Errorf("kayıt sayısı = %d, want 1", count)
	}
}

func TestPublicThemeReturnsPalette(t *testing.T) {
	app, _ := newTestApp(t, &stubNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/public/theme", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	theme, ok := body["theme"].(map[string]interface{})
	if !ok {
		t.Fatalf("theme alanı yok: %v", body)
	}
	if theme["primary"] != "#1A472A" || theme["mode"] != "dark" {
		t.Errorf("varsayılan palet beklenirdi: %v", theme)
	}
}

func TestPublicContentReturnsSavedBodies(t *testing.T) {
	app, db := newTestApp(t, &stubNotifier{})

	if err := db.Create(&models.Content{Key: "hero_title", Body: "Lezzetin Adresi"}).Error; err != nil {
		t.Fatalf("içerik oluşturulamadı: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/public/content", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	body := decodeBody(t, resp)
	content, ok := body["content"].(map[string]interface{})
	if !ok {
		t.Fatalf("content alanı yok: %v", body)
	}
	if content["hero_title"] != "Lezzetin Adresi" {
		t.Errorf("hero_title = %v", content["hero_title"])
	}
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, &stubNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
