package seeders

import (
	"errors"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedContents sabit içerik anahtarlarını boş gövdelerle oluşturur.
// Var olan anahtarlara dokunulmaz.
func SeedContents(db *gorm.DB) error {
	var createdCount int64

	for _, key := range models.ContentKeys {
		var existing models.Content
		result := db.Where("key = ?", key).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("İçerik anahtarı kontrol edilirken veritabanı hatası",
				zap.String("key", key), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(&models.Content{Key: key}).Error; err != nil {
			configslog.Log.Error("İçerik anahtarı oluşturulamadı",
				zap.String("key", key), zap.Error(err))
			return err
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet içerik anahtarı seed edildi.", createdCount)
	}
	return nil
}
