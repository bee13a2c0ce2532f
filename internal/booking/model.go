package booking

import (
	"time"
)

// ============================
// 🔷 GORM Event Model
// One venue reservation. The reporting core only reads ClientName, EventName,
// Date, Contact and Amount; everything else passes through untouched.
type Event struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClientName   string    `gorm:"column:client_name;type:varchar(255);not null" json:"client_name"`
	Email        string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	StartTime    string    `gorm:"column:start_time;type:varchar(5)" json:"start_time"`
	EndTime      string    `gorm:"column:end_time;type:varchar(5)" json:"end_time"`
	Contact      string    `gorm:"type:varchar(50)" json:"contact"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	EventName    string    `gorm:"column:event_name;type:varchar(100);not null" json:"event_name"`
	Hall         string    `gorm:"type:varchar(20);not null" json:"hall"`
	BookingBy    string    `gorm:"column:booking_by;type:varchar(100)" json:"booking_by,omitempty"`
	Reference    string    `gorm:"type:varchar(100)" json:"reference,omitempty"`
	HallHandover bool      `gorm:"column:hall_handover;default:false" json:"hall_handover"`
	Decoration   bool      `gorm:"default:false" json:"decoration"`
	Catering     bool      `gorm:"default:false" json:"catering"`
	Kitchen      bool      `gorm:"default:false" json:"kitchen"`
	Details      string    `gorm:"type:text" json:"details,omitempty"`
	Amount       *int64    `gorm:"default:0" json:"amount"`
	Advance      *int64    `gorm:"default:0" json:"advance"`
	Balance      *int64    `gorm:"default:0" json:"balance"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// AmountValue returns the booked amount in whole rupees, 0 when unset.
func (e Event) AmountValue() int64 {
	if e.Amount == nil {
		return 0
	}
	return *e.Amount
}
