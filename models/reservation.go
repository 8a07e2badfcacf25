package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses. Transitions are operator-only: the submission
// flow always creates reservations as pending.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	BoatType string    `gorm:"column:boat_type;size:32;index" json:"boat_type"`
	Formula  string    `gorm:"column:formula;size:32;index" json:"formula"`
	Date     time.Time `gorm:"column:date;type:date;index" json:"date"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	ContactName  string `gorm:"column:contact_name;size:255" json:"contact_name"`
	ContactEmail string `gorm:"column:contact_email;size:150" json:"contact_email"`
	ContactPhone string `gorm:"column:contact_phone;size:50" json:"contact_phone"`
	Message      string `gorm:"column:message;type:text" json:"message,omitempty"`

	Status        string `gorm:"column:status;size:32;default:pending" json:"status"`
	TotalPrice    int    `gorm:"column:total_price" json:"total_price"`
	DepositAmount int    `gorm:"column:deposit_amount" json:"deposit_amount"`
	DepositPaid   bool   `gorm:"column:deposit_paid;default:false" json:"deposit_paid"`
}
