package models

import (
	"time"
)

// Cart is the pre-checkout holding area, keyed by an anonymous session token.
// Carts are hard-deleted at checkout so the session token can be reused.
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID string    `gorm:"uniqueIndex;not null" json:"session_id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one line in a cart. Name and price are snapshots taken at
// add time; the pair (cart_id, menu_item_id) is unique and repeated adds
// increment the quantity.
type CartItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CartID       uint      `gorm:"not null;uniqueIndex:idx_cart_menu_item" json:"cart_id"`
	MenuItemID   uint      `gorm:"not null;uniqueIndex:idx_cart_menu_item" json:"menu_item_id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	ItemName     string    `gorm:"not null" json:"item_name"`
	Price        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
