package models

// DefaultMessageTemplate yeni randevu bildirimi için varsayılan şablon.
// Şablon URL-encoded tutulur; redirect modunda olduğu gibi linke gömülür,
// API modlarında gönderimden önce decode edilir.
const DefaultMessageTemplate = "Yeni Randevu:%0AAd:%20{{name}}%0ATelefon:%20{{phone}}%0ATarih:%20{{date}}%0AMesaj:%20{{message}}"

// Setting WhatsApp bildirim ayarlarını tutan tekil kayıttır.
// Tabloda en fazla bir satır bulunması beklenir.
type Setting struct {
	BaseModel
	WhatsappNumber  string `gorm:"type:varchar(40);default:''" json:"whatsappNumber"`
	MessageTemplate string `gorm:"type:text" json:"messageTemplate"`
}
