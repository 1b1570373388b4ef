// Package renderer panel view'larını ortak layout ve flash mesajlarıyla render eder.
package renderer

import (
	"net/http"

	"lezzet.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View data anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash mesajlarını view datasına ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render verilen view'ı layout içinde render eder. Status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["UserName"]; !ok {
		if name, ok := c.Locals("userName").(string); ok {
			data["UserName"] = name
		}
	}
	return c.Status(code).Render(view, data, layout)
}
