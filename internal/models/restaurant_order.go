package models

import (
	"time"
)

// RestaurantOrder is the per-restaurant fulfillment unit within an order.
// Each distinct restaurant in an order's items gets exactly one row; the
// (order_id, restaurant_id) pair is unique so confirming an order twice
// cannot duplicate sub-orders.
type RestaurantOrder struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	OrderID      uint      `gorm:"not null;uniqueIndex:idx_order_restaurant" json:"order_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_order_restaurant" json:"restaurant_id"`
	Status       string    `gorm:"index;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName sets the table name.
func (RestaurantOrder) TableName() string {
	return "restaurant_orders"
}
