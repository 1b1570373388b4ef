package main

import (
	"flag"

	"lezzet.link/configs/configsdatabase"
	"lezzet.link/configs/configslog"
	"lezzet.link/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Veritabanı seeder'larını çalıştır")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
