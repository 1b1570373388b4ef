package services

import (
	"context"
	"testing"
	"time"

	"lezzet.link/configs/configsdatabase"
	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB in-memory sqlite açar ve global bağlantı olarak atar.
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
	// :memory: her bağlantıda ayrı veritabanı verir.
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

func TestValidateAppointmentInput(t *testing.T) {
	cases := []struct {
		name  string
		input AppointmentInput
		want  error
	}{
		{"geçerli", AppointmentInput{Name: "Ali", Phone: "555"}, nil},
		{"ad boş", AppointmentInput{Phone: "555"}, ErrAppointmentNameRequired},
		{"ad sadece boşluk", AppointmentInput{Name: "   ", Phone: "555"}, ErrAppointmentNameRequired},
		{"telefon boş", AppointmentInput{Name: "Ali"}, ErrAppointmentPhoneRequired},
		{"telefon sadece boşluk", AppointmentInput{Name: "Ali", Phone: " \t"}, ErrAppointmentPhoneRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateAppointmentInput(tc.input); got != tc.want {
				t.Errorf("ValidateAppointmentInput() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseAppointmentDate(t *testing.T) {
	if got := ParseAppointmentDate("", "19:00"); got != nil {
		t.Errorf("boş tarih için nil beklenirdi, %v geldi", got)
	}

	configslog.InitLogger()
	if got := ParseAppointmentDate("yarın akşam", ""); got != nil {
		t.Errorf("ayrıştırılamayan tarih için nil beklenirdi, %v geldi", got)
	}

	got := ParseAppointmentDate("2026-03-15", "19:30")
	want := time.Date(2026, 3, 15, 19, 30, 0, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Errorf("ParseAppointmentDate() = %v, want %v", got, want)
	}

	got = ParseAppointmentDate("2026-03-15T20:00", "")
	want = time.Date(2026, 3, 15, 20, 0, 0, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Errorf("ParseAppointmentDate() = %v, want %v", got, want)
	}

	got = ParseAppointmentDate("2026-03-15", "")
	want = time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Errorf("ParseAppointmentDate() = %v, want %v", got, want)
	}
}

func TestCreateAppointmentDefaultsToPending(t *testing.T) {
	setupTestDB(t)
	service := NewAppointmentService()

	appointment, err := service.CreateAppointment(context.Background(), AppointmentInput{
		Name:    "  Ali Veli  ",
		Phone:   "5551112233",
		Date:    "2026-04-01",
		Message: "pencere kenarı",
		Status:  "contacted", // form gönderiminden gelen durum yok sayılır
	})
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}
	if appointment.ID == 0 {
		t.Error("kayıt ID'si atanmadı")
	}
	if appointment.Name != "Ali Veli" {
		t.Errorf("Name = %q, trim beklenirdi", appointment.Name)
	}
	if appointment.Status != models.AppointmentStatusPending {
		t.Errorf("Status = %q, want %q", appointment.Status, models.AppointmentStatusPending)
	}
}

func TestApproveAppointment(t *testing.T) {
	setupTestDB(t)
	service := NewAppointmentService()
	ctx := context.Background()

	appointment, err := service.CreateAppointment(ctx, AppointmentInput{Name: "Ali", Phone: "555"})
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}

	if err := service.ApproveAppointment(ctx, appointment.ID); err != nil {
		t.Fatalf("ApproveAppointment() error = %v", err)
	}

	updated, err := service.GetAppointmentByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("GetAppointmentByID() error = %v", err)
	}
	if updated.Status != models.AppointmentStatusContacted {
		t.Errorf("Status = %q, want %q", updated.Status, models.AppointmentStatusContacted)
	}

	if err := service.ApproveAppointment(ctx, 9999); err != ErrAppointmentNotFound {
		t.Errorf("olmayan ID için err = %v, want %v", err, ErrAppointmentNotFound)
	}
}

func TestUpdateAppointmentKeepsDateWhenFieldEmpty(t *testing.T) {
	setupTestDB(t)
	service := NewAppointmentService()
	ctx := context.Background()

	appointment, err := service.CreateAppointment(ctx, AppointmentInput{
		Name: "Ali", Phone: "555", Date: "2026-04-01",
	})
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}

	// Tarih alanı boş gönderildiğinde mevcut tarih silinmemeli.
	err = service.UpdateAppointment(ctx, appointment.ID, AppointmentInput{
		Name: "Ali Veli", Phone: "555", Message: "not eklendi",
	})
	if err != nil {
		t.Fatalf("UpdateAppointment() error = %v", err)
	}

	updated, err := service.GetAppointmentByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("GetAppointmentByID() error = %v", err)
	}
	if updated.Date == nil {
		t.Fatal("tarih boş güncelleme sonrası silindi")
	}
	want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)
	if !updated.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", updated.Date, want)
	}

	// Yeni tarih verildiğinde güncellenir.
	err = service.UpdateAppointment(ctx, appointment.ID, AppointmentInput{
		Name: "Ali Veli", Phone: "555", Date: "2026-05-02", Time: "19:00",
	})
	if err != nil {
		t.Fatalf("UpdateAppointment() error = %v", err)
	}
	updated, _ = service.GetAppointmentByID(ctx, appointment.ID)
	want = time.Date(2026, 5, 2, 19, 0, 0, 0, time.Local)
	if updated.Date == nil || !updated.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", updated.Date, want)
	}
}

func TestGetDashboardSummary(t *testing.T) {
	setupTestDB(t)
	service := NewAppointmentService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := service.CreateAppointment(ctx, AppointmentInput{Name: "Ali", Phone: "555"}); err != nil {
			t.Fatalf("CreateAppointment() error = %v", err)
		}
	}
	appointment, _ := service.CreateAppointment(ctx, AppointmentInput{Name: "Veli", Phone: "556"})
	if err := service.ApproveAppointment(ctx, appointment.ID); err != nil {
		t.Fatalf("ApproveAppointment() error = %v", err)
	}

	summary, err := service.GetDashboardSummary(ctx)
	if err != nil {
		t.Fatalf("GetDashboardSummary() error = %v", err)
	}
	if summary.Total != 4 || summary.Pending != 3 || summary.Contacted != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Recent) != 4 {
		t.Errorf("Recent uzunluğu = %d, want 4", len(summary.Recent))
	}
}
