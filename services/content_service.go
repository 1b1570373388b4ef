package services

import (
	"context"
	"errors"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/repositories"

	"go.uber.org/zap"
)

// ContentServiceError özel servis hataları
type ContentServiceError string

func (e ContentServiceError) Error() string { return string(e) }

const ErrContentSaveFailed ContentServiceError = "içerik kaydedilemedi"

// IContentService düzenlenebilir içerik blokları için arayüz.
type IContentService interface {
	GetEditorContent(ctx context.Context) (map[string]models.Content, error)
	GetPublicContentMap(ctx context.Context) (map[string]string, error)
	SaveContent(ctx context.Context, values map[string]string) error
}

// ContentService IContentService arayüzünü uygular.
type ContentService struct {
	repo repositories.IContentRepository
}

// NewContentService yeni bir ContentService örneği oluşturur.
func NewContentService() IContentService {
	return &ContentService{repo: repositories.NewContentRepository()}
}

// GetEditorContent editör görünümü için sabit anahtar setini döndürür.
// Henüz kaydedilmemiş anahtarlar boş gövdeyle yer alır.
func (s *ContentService) GetEditorContent(ctx context.Context) (map[string]models.Content, error) {
	result := make(map[string]models.Content, len(models.ContentKeys))
	for _, key := range models.ContentKeys {
		content, err := s.repo.FindByKey(ctx, key)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				result[key] = models.Content{Key: key}
				continue
			}
			return nil, err
		}
		result[key] = *content
	}
	return result, nil
}

// GetPublicContentMap public API için anahtar -> gövde eşlemesini döndürür.
func (s *ContentService) GetPublicContentMap(ctx context.Context) (map[string]string, error) {
	contents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(contents))
	for _, c := range contents {
		result[c.Key] = c.Body
	}
	return result, nil
}

// SaveContent gönderilen her alanı anahtarına göre upsert eder.
func (s *ContentService) SaveContent(ctx context.Context, values map[string]string) error {
	for key, body := range values {
		if err := s.repo.UpsertBody(ctx, key, body); err != nil {
			configslog.Log.Error("İçerik kaydedilirken repository hatası", zap.String("key", key), zap.Error(err))
			return ErrContentSaveFailed
		}
	}
	return nil
}

var _ IContentService = (*ContentService)(nil)
