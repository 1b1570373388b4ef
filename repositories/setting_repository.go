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

// ISettingRepository tekil WhatsApp ayar kaydı için arayüz.
type ISettingRepository interface {
	FindOrCreate(ctx context.Context, defaults models.Setting) (*models.Setting, error)
	Update(ctx context.Context, setting *models.Setting) error
}

// SettingRepository ISettingRepository arayüzünü uygular.
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository yeni bir SettingRepository örneği oluşturur.
func NewSettingRepository() ISettingRepository {
	return &SettingRepository{db: configs.GetDB()}
}

func (r *SettingRepository) getDB(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, r.db)
}

// FindOrCreate tekil ayar kaydını döndürür; yoksa verilen varsayılanlarla
// oluşturur. FirstOrCreate sayesinde eşzamanlı ilk isteklerde çift kayıt
// oluşmaz (tek satır invariant'ı).
func (r *SettingRepository) FindOrCreate(ctx context.Context, defaults models.Setting) (*models.Setting, error) {
	var setting models.Setting
	err := r.getDB(ctx).Attrs(defaults).FirstOrCreate(&setting, models.Setting{BaseModel: models.BaseModel{ID: 1}}).Error
	if err != nil {
		configslog.Log.Error("SettingRepository.FindOrCreate: DB error", zap.Error(err))
		return nil, err
	}
	return &setting, nil
}

// Update ayar kaydını Save ile günceller.
func (r *SettingRepository) Update(ctx context.Context, setting *models.Setting) error {
	if setting == nil || setting.ID == 0 {
		return errors.New("güncellenecek ayar kaydı geçerli değil")
	}
	return r.getDB(ctx).Save(setting).Error
}

var _ ISettingRepository = (*SettingRepository)(nil)
