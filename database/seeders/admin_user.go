package seeders

import (
	"errors"
	"os"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser ADMIN_USERNAME/ADMIN_PASSWORD ortam değişkenlerinden ilk admin
// kullanıcısını oluşturur. Değişkenler boşsa veya kullanıcı zaten varsa atlanır.
func SeedAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		configslog.SLog.Info("ADMIN_USERNAME/ADMIN_PASSWORD tanımlı değil, admin seed atlanıyor.")
		return nil
	}

	var existing models.User
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Admin kullanıcı '%s' zaten mevcut, oluşturma atlanıyor.", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Admin kullanıcı kontrol edilirken veritabanı hatası",
			zap.String("username", username), zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Admin şifresi hashlenemedi", zap.Error(err))
		return err
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Admin kullanıcı oluşturulamadı",
			zap.String("username", username), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Admin kullanıcı oluşturuldu: %s", username)
	return nil
}
