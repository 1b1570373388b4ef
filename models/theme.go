package models

// Tema modları.
const (
	ThemeModeLight = "light"
	ThemeModeDark  = "dark"
)

// Theme sitenin renk ayarlarını tutan tekil kayıttır.
type Theme struct {
	BaseModel
	Primary    string `gorm:"type:varchar(7);default:'#1A472A'" json:"primary"`
	Secondary  string `gorm:"type:varchar(7);default:'#A6262F'" json:"secondary"`
	Background string `gorm:"type:varchar(7);default:'#121212'" json:"background"`
	Text       string `gorm:"type:varchar(7);default:'#E0E0E0'" json:"text"`
	Mode       string `gorm:"type:varchar(5);default:'dark'" json:"mode"`
}

// DefaultTheme orijinal sitenin renk paletiyle yeni bir tema döndürür.
func DefaultTheme() Theme {
	return Theme{
		Primary:    "#1A472A",
		Secondary:  "#A6262F",
		Background: "#121212",
		Text:       "#E0E0E0",
		Mode:       ThemeModeDark,
	}
}
