package models

import "strings"

// Medya türleri.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media panelden yüklenen görsel veya videoyu temsil eder.
// Path uploads dizini altındaki dosyaya göreli URL'dir (örn. /uploads/abc.jpg).
type Media struct {
	BaseModel
	Title string `gorm:"type:varchar(255);default:''" json:"title"`
	Type  string `gorm:"type:varchar(10);not null" json:"type"`
	Path  string `gorm:"type:varchar(500);not null" json:"path"`
}

// MediaTypeFromContentType MIME türünden medya türünü çıkarır.
// "video" ile başlayan her şey video, kalanı görseldir.
func MediaTypeFromContentType(contentType string) string {
	if strings.HasPrefix(contentType, "video") {
		return MediaTypeVideo
	}
	return MediaTypeImage
}
