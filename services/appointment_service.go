package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/pkg/queryparams"
	"lezzet.link/repositories"

	"go.uber.org/zap"
)

// AppointmentServiceError özel servis hataları
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound       AppointmentServiceError = "randevu bulunamadı"
	ErrAppointmentNameRequired   AppointmentServiceError = "ad alanı zorunludur"
	ErrAppointmentPhoneRequired  AppointmentServiceError = "telefon alanı zorunludur"
	ErrAppointmentCreationFailed AppointmentServiceError = "randevu oluşturulamadı"
	ErrAppointmentUpdateFailed   AppointmentServiceError = "randevu güncellenemedi"
	ErrAppointmentDeletionFailed AppointmentServiceError = "randevu silinemedi"
)

// AppointmentInput form gönderiminden veya panelden gelen randevu verisi.
// Date "2006-01-02" veya datetime-local biçiminde gelebilir; Time panel
// formundaki ayrı saat alanıdır (boşsa 00:00).
type AppointmentInput struct {
	Name    string `form:"name" json:"name"`
	Phone   string `form:"phone" json:"phone"`
	Date    string `form:"date" json:"date"`
	Time    string `form:"time" json:"time"`
	Message string `form:"message" json:"message"`
	Status  string `form:"status" json:"status"`
}

// DashboardSummary panel ana sayfası için sayılar ve son kayıtlar.
type DashboardSummary struct {
	Total     int64
	Pending   int64
	Contacted int64
	Recent    []models.Appointment
}

// IAppointmentService randevu işlemleri için arayüz.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, input AppointmentInput) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetAppointments(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateAppointment(ctx context.Context, id uint, input AppointmentInput) error
	ApproveAppointment(ctx context.Context, id uint) error
	DeleteAppointment(ctx context.Context, id uint) error
	GetDashboardSummary(ctx context.Context) (*DashboardSummary, error)
}

// AppointmentService IAppointmentService arayüzünü uygular.
type AppointmentService struct {
	repo repositories.IAppointmentRepository
}

// NewAppointmentService yeni bir AppointmentService örneği oluşturur.
func NewAppointmentService() IAppointmentService {
	return &AppointmentService{repo: repositories.NewAppointmentRepository()}
}

// ValidateAppointmentInput ad ve telefonun (trim sonrası) dolu olduğunu doğrular.
func ValidateAppointmentInput(input AppointmentInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrAppointmentNameRequired
	}
	if strings.TrimSpace(input.Phone) == "" {
		return ErrAppointmentPhoneRequired
	}
	return nil
}

// ParseAppointmentDate tarih ve saat alanlarını sunucu yerel saatinde birleştirir.
// Boş tarih nil döner; ayrıştırılamayan tarih uyarı loglanıp nil sayılır.
func ParseAppointmentDate(date, timeOfDay string) *time.Time {
	if date == "" {
		return nil
	}
	candidate := date
	if timeOfDay != "" && !strings.Contains(date, "T") && !strings.Contains(date, " ") {
		candidate = date + " " + timeOfDay
	}
	layouts := []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, candidate, time.Local); err == nil {
			return &t
		}
	}
	configslog.SLog.Warnf("Randevu tarihi ayrıştırılamadı, boş bırakılıyor: %q", candidate)
	return nil
}

// CreateAppointment doğrulanmış veriden pending durumunda yeni randevu oluşturur.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input AppointmentInput) (*models.Appointment, error) {
	if err := ValidateAppointmentInput(input); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Date:    ParseAppointmentDate(input.Date, input.Time),
		Message: input.Message,
		Status:  models.AppointmentStatusPending,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		configslog.Log.Error("Randevu oluşturulurken repository hatası", zap.Error(err))
		return nil, ErrAppointmentCreationFailed
	}
	return appointment, nil
}

// GetAppointmentByID ID ile randevuyu döndürür.
func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// GetAppointments filtreli ve sayfalı randevu listesini döndürür.
func (s *AppointmentService) GetAppointments(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	appointments, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(appointments, params, total), nil
}

// UpdateAppointment alanları ve (geçerliyse) durumu günceller.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uint, input AppointmentInput) error {
	if err := ValidateAppointmentInput(input); err != nil {
		return err
	}

	appointment, err := s.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}

	appointment.Name = strings.TrimSpace(input.Name)
	appointment.Phone = strings.TrimSpace(input.Phone)
	// Boş bırakılan tarih alanı mevcut tarihi korur.
	if input.Date != "" {
		appointment.Date = ParseAppointmentDate(input.Date, input.Time)
	}
	appointment.Message = input.Message
	if input.Status == models.AppointmentStatusPending || input.Status == models.AppointmentStatusContacted {
		appointment.Status = input.Status
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		configslog.Log.Error("Randevu güncellenirken repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentUpdateFailed
	}
	return nil
}

// ApproveAppointment randevuyu contacted durumuna geçirir.
func (s *AppointmentService) ApproveAppointment(ctx context.Context, id uint) error {
	err := s.repo.UpdateStatus(ctx, id, models.AppointmentStatusContacted)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("Randevu onaylanırken repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentUpdateFailed
	}
	return nil
}

// DeleteAppointment randevuyu siler.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	appointment, err := s.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, appointment); err != nil {
		configslog.Log.Error("Randevu silinirken repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentDeletionFailed
	}
	return nil
}

// GetDashboardSummary panel ana sayfası için sayıları ve son 20 kaydı toplar.
func (s *AppointmentService) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountByStatus(ctx, models.AppointmentStatusPending)
	if err != nil {
		return nil, err
	}
	contacted, err := s.repo.CountByStatus(ctx, models.AppointmentStatusContacted)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.FindRecent(ctx, 20)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{Total: total, Pending: pending, Contacted: contacted, Recent: recent}, nil
}

var _ IAppointmentService = (*AppointmentService)(nil)
