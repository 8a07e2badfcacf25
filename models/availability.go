package models

import "time"

// Availability tracks the remaining seats for one (date, boat, formula)
// departure. No row for a key means capacity is untracked and the date
// sells freely, so deletes are hard: a soft-deleted row would keep
// occupying the unique key while reading as absent.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date     time.Time `gorm:"column:date;type:date;uniqueIndex:idx_departure_key" json:"date"`
	BoatType string    `gorm:"column:boat_type;size:32;uniqueIndex:idx_departure_key" json:"boat_type"`
	Formula  string    `gorm:"column:formula;size:32;uniqueIndex:idx_departure_key" json:"formula"`

	RemainingCapacity int `gorm:"column:remaining_capacity" json:"remaining_capacity"`
}
