package model

import (
	"time"
)

// Employee is a staff roster entry for a restaurant.
type Employee struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"index;not null"`
	FullName     string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Position     string    `json:"position" gorm:"type:varchar(100);not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"type:varchar(20)"`
	Salary       float64   `json:"salary" gorm:"type:decimal(10,2);not null"`
	HireDate     time.Time `json:"hire_date" gorm:"type:date;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
