package model

import (
	"time"
)

// Table statuses.
const (
	TableStatusFree     = "free"
	TableStatusOccupied = "occupied"
)

// Table is a dine-in table and its occupancy state.
type Table struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"index;not null"`
	TableNumber  int       `json:"table_number" gorm:"not null"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null;default:'free'"` // free or occupied
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
