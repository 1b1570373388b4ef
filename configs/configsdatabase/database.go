package configsdatabase

import (
	"fmt"
	"os"

	"lezzet.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB veritabanı bağlantısını açar. DB_DRIVER=sqlite ise DB_PATH üzerinden
// sqlite, aksi halde DB_* değişkenlerinden oluşturulan DSN ile postgres kullanılır.
func InitDB() {
	driver := getEnv("DB_DRIVER", "postgres")

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(getEnv("DB_PATH", "./lezzet.db"))
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "lezzet"),
			getEnv("DB_SSLMODE", "disable"),
			getEnv("DB_TIMEZONE", "Europe/Istanbul"),
		)
		dialector = postgres.Open(dsn)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı",
			zap.String("driver", driver), zap.Error(err))
	}

	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (driver: %s)", driver)
}

// GetDB aktif *gorm.DB bağlantısını döndürür. InitDB çağrılmadan kullanılamaz.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB çağrıldı ancak veritabanı başlatılmamış (InitDB unutulmuş olabilir)")
	}
	return db
}

// SetDB bağlantıyı dışarıdan atar. Testlerde in-memory sqlite vermek için kullanılır.
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB altta yatan sql.DB bağlantısını kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
