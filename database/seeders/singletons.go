package seeders

import (
	"os"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSingletons tekil Setting ve Theme kayıtlarının trafik başlamadan önce
// var olmasını garanti eder. FirstOrCreate sayesinde tekrar çalıştırmak güvenlidir.
func SeedSingletons(db *gorm.DB) error {
	setting := models.Setting{
		WhatsappNumber:  os.Getenv("WHATSAPP_NUMBER"),
		MessageTemplate: models.DefaultMessageTemplate,
	}
	var existingSetting models.Setting
	err := db.Attrs(setting).FirstOrCreate(&existingSetting, models.Setting{BaseModel: models.BaseModel{ID: 1}}).Error
	if err != nil {
		configslog.Log.Error("Setting kaydı seed edilemedi", zap.Error(err))
		return err
	}

	var existingTheme models.Theme
	err = db.Attrs(models.DefaultTheme()).FirstOrCreate(&existingTheme, models.Theme{BaseModel: models.BaseModel{ID: 1}}).Error
	if err != nil {
		configslog.Log.Error("Theme kaydı seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tekil Setting ve Theme kayıtları hazır.")
	return nil
}
