package migrations

import (
	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating contents table...")
	if err := db.AutoMigrate(&models.Content{}); err != nil {
		configslog.Log.Error("Failed to migrate contents table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Contents table migrated successfully")
	return nil
}
