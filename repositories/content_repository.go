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

// IContentRepository içerik blokları için arayüz.
type IContentRepository interface {
	FindAll(ctx context.Context) ([]models.Content, error)
	FindByKey(ctx context.Context, key string) (*models.Content, error)
	UpsertBody(ctx context.Context, key, body string) error
}

// ContentRepository IContentRepository arayüzünü uygular.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository yeni bir ContentRepository örneği oluşturur.
func NewContentRepository() IContentRepository {
	return &ContentRepository{db: configs.GetDB()}
}

func (r *ContentRepository) getDB(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, r.db)
}

// FindAll tüm içerik bloklarını döndürür.
func (r *ContentRepository) FindAll(ctx context.Context) ([]models.Content, error) {
	var contents []models.Content
	err := r.getDB(ctx).Find(&contents).Error
	if err != nil {
		configslog.Log.Error("ContentRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return contents, nil
}

// FindByKey anahtar ile içerik bloğunu bulur.
func (r *ContentRepository) FindByKey(ctx context.Context, key string) (*models.Content, error) {
	if key == "" {
		return nil, errors.New("içerik anahtarı boş olamaz")
	}
	var content models.Content
	err := r.getDB(ctx).Where("key = ?", key).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContentRepository.FindByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &content, nil
}

// UpsertBody anahtara ait gövdeyi günceller; kayıt yoksa oluşturur.
func (r *ContentRepository) UpsertBody(ctx context.Context, key, body string) error {
	if key == "" {
		return errors.New("içerik anahtarı boş olamaz")
	}
	var content models.Content
	err := r.getDB(ctx).
		Where(models.Content{Key: key}).
		Assign(map[string]interface{}{"body": body}).
		FirstOrCreate(&content).Error
	if err != nil {
		configslog.Log.Error("ContentRepository.UpsertBody: DB error", zap.String("key", key), zap.Error(err))
	}
	return err
}

var _ IContentRepository = (*ContentRepository)(nil)
