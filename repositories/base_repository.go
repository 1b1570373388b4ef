package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound aranan kaydın bulunamadığını belirtir.
// gorm.ErrRecordNotFound repository sınırında bu hataya çevrilir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// getDBFromContext context'te transaction varsa onu, yoksa verilen bağlantıyı
// context ile döndürür.
func getDBFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
