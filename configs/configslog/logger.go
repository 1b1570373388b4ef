package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log global yapılandırılmış logger.
// SLog aynı logger'ın sugared versiyonudur (formatlı mesajlar için).
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger uygulama logger'ını başlatır. APP_ENV=production ise JSON,
// aksi halde okunabilir console encoder kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'lanmış log kayıtlarını flush'lar (defer ile çağrılır).
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
