package database

import (
	"lezzet.link/configs/configslog"
	"lezzet.link/database/migrations"
	"lezzet.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed adımlarını tek transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"appointments", migrations.MigrateAppointmentsTable},
		{"settings", migrations.MigrateSettingsTable},
		{"contents", migrations.MigrateContentsTable},
		{"themes", migrations.MigrateThemesTable},
		{"media", migrations.MigrateMediaTable},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonu çalıştırılıyor...", step.name)
		if err := step.fn(db); err != nil {
			return err
		}
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func RunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Admin kullanıcısı kontrol ediliyor...")
	if err := seeders.SeedAdminUser(db); err != nil {
		return err
	}

	configslog.SLog.Info("İçerik anahtarları kontrol ediliyor...")
	if err := seeders.SeedContents(db); err != nil {
		return err
	}

	configslog.SLog.Info("Tekil kayıtlar kontrol ediliyor...")
	if err := seeders.SeedSingletons(db); err != nil {
		return err
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla çalıştırıldı.")
	return nil
}
