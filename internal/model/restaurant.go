package model

import (
	"time"
)

// Restaurant is the tenant boundary: menus, orders, employees and tables all
// belong to exactly one restaurant, created together with its first admin
// account during registration.
type Restaurant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Address     string    `json:"address" gorm:"type:text"`
	PhoneNumber string    `json:"phone_number" gorm:"type:varchar(20)"`
	Email       string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
