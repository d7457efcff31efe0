package models

import (
	"time"
)

// MenuItem belongs to exactly one restaurant (approved partner application).
type MenuItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	Name         string    `gorm:"index;not null" json:"name"`
	Description  string    `json:"description"`
	Price        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Restaurant *PartnerApplication `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menu_items"
}
