package repositories

import (
	"context"
	"errors"
	"time"

	"lezzet.link/configs"
	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, appointment *models.Appointment) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// AppointmentRepository IAppointmentRepository arayüzünü uygular.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository yeni bir AppointmentRepository örneği oluşturur.
func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configs.GetDB()}
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, r.db)
}

// Create yeni bir randevu kaydı oluşturur.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil {
		return errors.New("oluşturulacak randevu nil olamaz")
	}
	return r.getDB(ctx).Create(appointment).Error
}

// FindByID ID ile randevu kaydını bulur.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Appointment ID")
	}
	var appointment models.Appointment
	err := r.getDB(ctx).First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindAllPaginated randevuları filtreleyip sayfalayarak döndürür.
// İsim filtresi büyük/küçük harf duyarsız substring, tarih filtresi
// [gün 00:00, ertesi gün 00:00) aralığıdır (sunucu yerel saati).
func (r *AppointmentRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Appointment{})

	if params.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+params.Name+"%")
	}
	if params.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", params.Date, time.Local)
		if err != nil {
			configslog.SLog.Warnf("Geçersiz tarih filtresi yok sayıldı: %s", params.Date)
		} else {
			next := day.AddDate(0, 0, 1)
			query = query.Where("date >= ? AND date < ?", day, next)
		}
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return appointments, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"date":       "date",
		"name":       "name",
		"status":     "status",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "created_at"
	}
	query = query.Order(orderColumn + " " + params.OrderBy)

	err := query.Limit(params.PerPage).Offset(params.CalculateOffset()).Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.Find: DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return appointments, totalCount, nil
}

// FindRecent en son oluşturulan randevuları döndürür (dashboard özeti için).
func (r *AppointmentRepository) FindRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.getDB(ctx).Order("created_at desc").Limit(limit).Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindRecent: DB error", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// Update randevu kaydını Save ile günceller.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("güncellenecek randevu geçerli değil")
	}
	return r.getDB(ctx).Save(appointment).Error
}

// UpdateStatus sadece durum alanını günceller (onay işlemi).
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		return errors.New("geçersiz Appointment ID")
	}
	result := r.getDB(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.UpdateStatus: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete randevu kaydını siler (soft delete).
func (r *AppointmentRepository) Delete(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("silinecek randevu geçerli değil")
	}
	result := r.getDB(ctx).Delete(appointment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count toplam randevu sayısını döndürür.
func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

// CountByStatus belirli durumdaki randevu sayısını döndürür.
func (r *AppointmentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
