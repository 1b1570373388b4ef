package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm modellere gömülen ortak alanlar.
// DeletedAt sayesinde silme işlemleri soft delete olarak çalışır.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
