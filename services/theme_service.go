package services

import (
	"context"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/repositories"

	"go.uber.org/zap"
)

// ThemeServiceError özel servis hataları
type ThemeServiceError string

func (e ThemeServiceError) Error() string { return string(e) }

const ErrThemeUpdateFailed ThemeServiceError = "tema güncellenemedi"

// ThemeInput panel tema formundan gelen alanlar.
type ThemeInput struct {
	Primary    string `form:"primary" json:"primary"`
	Secondary  string `form:"secondary" json:"secondary"`
	Background string `form:"background" json:"background"`
	Text       string `form:"text" json:"text"`
	Mode       string `form:"mode" json:"mode"`
}

// IThemeService tekil tema kaydı için arayüz.
type IThemeService interface {
	GetTheme(ctx context.Context) (*models.Theme, error)
	UpdateTheme(ctx context.Context, input ThemeInput) (*models.Theme, error)
}

// ThemeService IThemeService arayüzünü uygular.
type ThemeService struct {
	repo repositories.IThemeRepository
}

// NewThemeService yeni bir ThemeService örneği oluşturur.
func NewThemeService() IThemeService {
	return &ThemeService{repo: repositories.NewThemeRepository()}
}

// GetTheme tekil tema kaydını döndürür; yoksa varsayılan paletle oluşturur.
func (s *ThemeService) GetTheme(ctx context.Context) (*models.Theme, error) {
	return s.repo.FindOrCreate(ctx, models.DefaultTheme())
}

// UpdateTheme tüm renk alanlarını ve modu günceller.
func (s *ThemeService) UpdateTheme(ctx context.Context, input ThemeInput) (*models.Theme, error) {
	theme, err := s.GetTheme(ctx)
	if err != nil {
		return nil, err
	}
	theme.Primary = input.Primary
	theme.Secondary = input.Secondary
	theme.Background = input.Background
	theme.Text = input.Text
	if input.Mode == models.ThemeModeLight || input.Mode == models.ThemeModeDark {
		theme.Mode = input.Mode
	}
	if err := s.repo.Update(ctx, theme); err != nil {
		configslog.Log.Error("Tema güncellenirken repository hatası", zap.Error(err))
		return nil, ErrThemeUpdateFailed
	}
	return theme, nil
}

var _ IThemeService = (*ThemeService)(nil)
