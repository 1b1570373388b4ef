package main

import (
	"os"

	"lezzet.link/configs/configsdatabase"
	"lezzet.link/configs/configslog"
	"lezzet.link/database"
	"lezzet.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// .env yoksa ortam değişkenleriyle devam edilir.
	}

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// Orijinal site açılışta şemayı ve varsayılan kayıtları hazırlar;
	// tekil Setting/Theme kayıtları trafik başlamadan garanti edilir.
	database.Initialize(configsdatabase.GetDB(), true, true)

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	// Statik site dosyaları ve yüklenen medya.
	app.Static("/css", "./css")
	app.Static("/js", "./js")
	app.Static("/images", "./images")
	app.Static("/sources", "./sources")
	app.Static("/uploads", uploadDir())

	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	configslog.SLog.Infof("Sunucu http://localhost:%s adresinde başlatılıyor", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// errorHandler yakalanmamış hataları genel bir mesaja çevirir.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	configslog.Log.Error("İşlenmemiş hata", zap.Int("status", code), zap.Error(err))

	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(code).JSON(fiber.Map{"error": "Sunucu hatası. Lütfen daha sonra tekrar deneyiniz."})
	}
	return c.Status(code).SendString("Sunucu hatası. Lütfen daha sonra tekrar deneyiniz.")
}
