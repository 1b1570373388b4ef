// Package flashmessages panel yönlendirmeleri arasında tek seferlik mesaj taşır.
package flashmessages

import (
	"encoding/json"

	"lezzet.link/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashData bir sonraki istekte gösterilecek mesajlar.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage verilen anahtara mesaj yazar. Mesaj bir kez okunduktan sonra silinir.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages bekleyen mesajları okur ve session'dan temizler.
func GetFlashMessages(c *fiber.Ctx) FlashData {
	var data FlashData
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data
	}
	if msg, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = msg
		sess.Delete(FlashSuccessKey)
	}
	if msg, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = msg
		sess.Delete(FlashErrorKey)
	}
	_ = sess.Save()
	return data
}

// SetFlashFormData hatalı form gönderimindeki veriyi redirect sonrası
// tekrar doldurmak üzere saklar.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve temizler.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var form map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil
	}
	return form
}
