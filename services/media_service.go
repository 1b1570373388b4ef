package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaServiceError özel servis hataları
type MediaServiceError string

func (e MediaServiceError) Error() string { return string(e) }

const (
	ErrMediaNotFound       MediaServiceError = "medya kaydı bulunamadı"
	ErrMediaCreationFailed MediaServiceError = "medya kaydı oluşturulamadı"
	ErrMediaDeletionFailed MediaServiceError = "medya kaydı silinemedi"
)

// IMediaService yüklenen görseller/videolar için arayüz.
type IMediaService interface {
	ListMedia(ctx context.Context) ([]models.Media, error)
	// PrepareUpload kayıt ve hedef disk yolunu üretir; dosya handler
	// tarafından bu yola yazıldıktan sonra CreateMedia çağrılır.
	PrepareUpload(title, originalName, contentType string) (*models.Media, string)
	CreateMedia(ctx context.Context, media *models.Media) error
	DeleteMedia(ctx context.Context, id uint) error
}

// MediaService IMediaService arayüzünü uygular.
type MediaService struct {
	repo      repositories.IMediaRepository
	uploadDir string
}

// NewMediaService upload dizinini hazırlayarak yeni bir MediaService oluşturur.
func NewMediaService() IMediaService {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		configslog.Log.Error("Upload dizini oluşturulamadı", zap.String("dir", dir), zap.Error(err))
	}
	return &MediaService{repo: repositories.NewMediaRepository(), uploadDir: dir}
}

// ListMedia tüm medya kayıtlarını en yeniden eskiye döndürür.
func (s *MediaService) ListMedia(ctx context.Context) ([]models.Media, error) {
	return s.repo.FindAll(ctx)
}

// PrepareUpload çakışmayan bir dosya adı üretir ve kaydı hazırlar.
// Tür MIME önekinden çıkarılır; başlık boşsa orijinal dosya adı kullanılır.
func (s *MediaService) PrepareUpload(title, originalName, contentType string) (*models.Media, string) {
	if title == "" {
		title = originalName
	}
	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	media := &models.Media{
		Title: title,
		Type:  models.MediaTypeFromContentType(contentType),
		Path:  "/uploads/" + storedName,
	}
	return media, filepath.Join(s.uploadDir, storedName)
}

// CreateMedia hazırlanan kaydı persiste eder.
func (s *MediaService) CreateMedia(ctx context.Context, media *models.Media) error {
	if err := s.repo.Create(ctx, media); err != nil {
		configslog.Log.Error("Medya kaydı oluşturulurken repository hatası", zap.Error(err))
		return ErrMediaCreationFailed
	}
	return nil
}

// DeleteMedia kaydı siler ve diskteki dosyayı best-effort kaldırır.
// Dosya zaten yoksa veya silinemezse hata yükseltilmez.
func (s *MediaService) DeleteMedia(ctx context.Context, id uint) error {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, media); err != nil {
		configslog.Log.Error("Medya kaydı silinirken repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrMediaDeletionFailed
	}

	diskPath := filepath.Join(s.uploadDir, filepath.Base(media.Path))
	if err := os.Remove(diskPath); err != nil {
		configslog.SLog.Warnf("Medya dosyası kaldırılamadı (yok sayıldı): %s", diskPath)
	}
	return nil
}

var _ IMediaService = (*MediaService)(nil)
