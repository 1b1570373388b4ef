package models

// Panelden düzenlenebilen sabit içerik anahtarları.
var ContentKeys = []string{"hero_title", "hero_subtitle", "hakkimizda_metin"}

// Content sayfa metinlerini anahtar/değer olarak tutar.
type Content struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Title string `gorm:"type:varchar(255);default:''" json:"title"`
	Body  string `gorm:"type:text;default:''" json:"body"`
}
