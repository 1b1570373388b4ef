package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var (
	ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")
	ErrUserIDMissing       = errors.New("session içinde kullanıcı ID yok")
)

// SessionStart istek için session'ı açar. Store, router middleware'i tarafından
// c.Locals("session_store") altına konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession giriş yapmış kullanıcının ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get("user_id")
	if raw == nil {
		return 0, ErrUserIDMissing
	}
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, ErrUserIDMissing
	}
	return id, nil
}

// SetUserSession giriş sonrası kullanıcı bilgilerini session'a yazar.
func SetUserSession(sess *session.Session, userID uint, username string) error {
	sess.Set("user_id", userID)
	sess.Set("user_name", username)
	return sess.Save()
}

// DestroySession oturumu sonlandırır (logout).
func DestroySession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
