package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lodging is one entry of the partner accommodation directory shown next
// to the cruise pages. Rows are loaded by the operator; the API only
// serves them.
type Lodging struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"size:255" json:"name"`
	Commune  string `gorm:"size:150;index" json:"commune"`
	Category string `gorm:"size:100" json:"category"`
	Capacity int    `json:"capacity,omitempty"`

	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Email   string `gorm:"size:150" json:"email,omitempty"`
	Website string `gorm:"size:255" json:"website,omitempty"`

	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
}
