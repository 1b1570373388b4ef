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

// IThemeRepository tekil tema kaydı için arayüz.
type IThemeRepository interface {
	FindOrCreate(ctx context.Context, defaults models.Theme) (*models.Theme, error)
	Update(ctx context.Context, theme *models.Theme) error
}

// ThemeRepository IThemeRepository arayüzünü uygular.
type ThemeRepository struct {
	db *gorm.DB
}

// NewThemeRepository yeni bir ThemeRepository örneği oluşturur.
func NewThemeRepository() IThemeRepository {
	return &ThemeRepository{db: configs.GetDB()}
}

func (r *ThemeRepository) getDB(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, r.db)
}

// FindOrCreate tekil tema kaydını döndürür; yoksa varsayılanlarla oluşturur.
func (r *ThemeRepository) FindOrCreate(ctx context.Context, defaults models.Theme) (*models.Theme, error) {
	var theme models.Theme
	err := r.getDB(ctx).Attrs(defaults).FirstOrCreate(&theme, models.Theme{BaseModel: models.BaseModel{ID: 1}}).Error
	if err != nil {
		configslog.Log.Error("ThemeRepository.FindOrCreate: DB error", zap.Error(err))
		return nil, err
	}
	return &theme, nil
}

// Update tema kaydını Save ile günceller.
func (r *ThemeRepository) Update(ctx context.Context, theme *models.Theme) error {
	if theme == nil || theme.ID == 0 {
		return errors.New("güncellenecek tema kaydı geçerli değil")
	}
	return r.getDB(ctx).Save(theme).Error
}

var _ IThemeRepository = (*ThemeRepository)(nil)
