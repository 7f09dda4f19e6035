package model

import (
	"time"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Order is a dine-in order with its line items. The order row and its items
// are always written in one transaction.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	RestaurantID  uint        `json:"restaurant_id" gorm:"index;not null"`
	TableNumber   int         `json:"table_number" gorm:"not null"`
	TotalAmount   float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status        string      `json:"status" gorm:"type:varchar(20);not null"` // pending, preparing, ready, completed, cancelled
	PaymentStatus string      `json:"payment_status" gorm:"type:varchar(20);not null"` // unpaid, paid
	QRCodeURL     string      `json:"qr_code_url" gorm:"type:varchar(512)"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	OrderTime     time.Time   `json:"order_time" gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is one line of an order, capturing the price at order time so
// later menu edits do not rewrite history.
type OrderItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"index;not null"`
	MenuID       uint      `json:"menu_id" gorm:"index;not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	PriceAtOrder float64   `json:"price_at_order" gorm:"type:decimal(10,2);not null"`
	Notes        string    `json:"notes" gorm:"type:text"`
	MenuName     string    `json:"menu_name,omitempty" gorm:"-"`
	MenuImage    string    `json:"menu_image,omitempty" gorm:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
