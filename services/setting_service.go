package services

import (
	"context"
	"os"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/repositories"

	"go.uber.org/zap"
)

// SettingServiceError özel servis hataları
type SettingServiceError string

func (e SettingServiceError) Error() string { return string(e) }

const ErrSettingUpdateFailed SettingServiceError = "ayarlar güncellenemedi"

// ISettingService tekil WhatsApp ayarları için arayüz.
type ISettingService interface {
	GetSetting(ctx context.Context) (*models.Setting, error)
	UpdateSetting(ctx context.Context, whatsappNumber, messageTemplate string) (*models.Setting, error)
}

// SettingService ISettingService arayüzünü uygular.
type SettingService struct {
	repo repositories.ISettingRepository
}

// NewSettingService yeni bir SettingService örneği oluşturur.
func NewSettingService() ISettingService {
	return &SettingService{repo: repositories.NewSettingRepository()}
}

// GetSetting tekil ayar kaydını döndürür; yoksa varsayılanlarla oluşturur.
// Varsayılan numara WHATSAPP_NUMBER ortam değişkeninden gelir.
func (s *SettingService) GetSetting(ctx context.Context) (*models.Setting, error) {
	defaults := models.Setting{
		WhatsappNumber:  os.Getenv("WHATSAPP_NUMBER"),
		MessageTemplate: models.DefaultMessageTemplate,
	}
	return s.repo.FindOrCreate(ctx, defaults)
}

// UpdateSetting numara ve şablonu günceller, güncel kaydı döndürür.
func (s *SettingService) UpdateSetting(ctx context.Context, whatsappNumber, messageTemplate string) (*models.Setting, error) {
	setting, err := s.GetSetting(ctx)
	if err != nil {
		return nil, err
	}
	setting.WhatsappNumber = whatsappNumber
	setting.MessageTemplate = messageTemplate
	if err := s.repo.Update(ctx, setting); err != nil {
		configslog.Log.Error("Ayarlar güncellenirken repository hatası", zap.Error(err))
		return nil, ErrSettingUpdateFailed
	}
	return setting, nil
}

var _ ISettingService = (*SettingService)(nil)
