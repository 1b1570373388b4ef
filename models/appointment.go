package models

import "time"

// Randevu durumları.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusContacted = "contacted"
)

// Appointment web formundan veya panelden oluşturulan rezervasyon talebidir.
type Appointment struct {
	BaseModel
	Name    string     `gorm:"type:varchar(200);not null" json:"name"`
	Phone   string     `gorm:"type:varchar(40);not null" json:"phone"`
	Date    *time.Time `gorm:"index" json:"date,omitempty"`
	Message string     `gorm:"type:text;default:''" json:"message"`
	Status  string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}
