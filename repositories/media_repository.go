package repositories

import (
	"context"
	"errors"

	"lezzet.link/configs"
	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IMediaRepository yüklenen medya kayıtları için arayüz.
type IMediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	FindByID(ctx context.Context, id uint) (*models.Media, error)
	FindAll(ctx context.Context) ([]models.Media, error)
	Delete(ctx context.Context, media *models.Media) error
}

// MediaRepository IMediaRepository arayüzünü uygular.
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository yeni bir MediaRepository örneği oluşturur.
func NewMediaRepository() IMediaRepository {
	return &MediaRepository{db: configs.GetDB()}
}

func (r *MediaRepository) getDB(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, r.db)
}

// Create yeni bir medya kaydı oluşturur.
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	if media == nil {
		return errors.New("oluşturulacak medya kaydı nil olamaz")
	}
	return r.getDB(ctx).Create(media).Error
}

// FindByID ID ile medya kaydını bulur.
func (r *MediaRepository) FindByID(ctx context.Context, id uint) (*models.Media, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Media ID")
	}
	var media models.Media
	err := r.getDB(ctx).First(&media, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MediaRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &media, nil
}

// FindAll tüm medya kayıtlarını en yeniden eskiye döndürür.
func (r *MediaRepository) FindAll(ctx context.Context) ([]models.Media, error) {
	var list []models.Media
	err := r.getDB(ctx).Order("created_at desc").Find(&list).Error
	if err != nil {
		configslog.Log.Error("MediaRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// Delete medya kaydını siler (soft delete).
func (r *MediaRepository) Delete(ctx context.Context, media *models.Media) error {
	if media == nil || media.ID == 0 {
		return errors.New("silinecek medya kaydı geçerli değil")
	}
	result := r.getDB(ctx).Delete(media)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IMediaRepository = (*MediaRepository)(nil)
