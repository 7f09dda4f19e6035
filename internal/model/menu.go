package model

import (
	"time"
)

// Menu is a sellable item in a restaurant's catalog.
type Menu struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	RestaurantID uint         `json:"restaurant_id" gorm:"index;not null"`
	Name         string       `json:"name" gorm:"type:varchar(255);not null"`
	Description  string       `json:"description" gorm:"type:text"`
	BasePrice    float64      `json:"base_price" gorm:"type:decimal(10,2);not null"`
	Category     string       `json:"category" gorm:"type:varchar(100);not null"`
	ImageURL     string       `json:"image_url" gorm:"type:varchar(512)"`
	IsAvailable  bool         `json:"is_available" gorm:"default:true"`
	Options      []MenuOption `json:"options,omitempty" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// MenuOption is a customization choice attached to a menu item, e.g. a size
// or topping. Options are scoped through their parent menu and cascade with
// it on delete.
type MenuOption struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	MenuID          uint      `json:"menu_id" gorm:"index;not null"`
	OptionGroupName string    `json:"option_group_name" gorm:"type:varchar(100)"`
	OptionType      string    `json:"option_type" gorm:"type:varchar(20);default:'single_choice'"` // single_choice or multiple_choice
	OptionName      string    `json:"option_name" gorm:"type:varchar(100)"`
	PriceAdjustment float64   `json:"price_adjustment" gorm:"type:decimal(10,2);default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
