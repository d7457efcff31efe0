package models

import (
	"time"
)

// Order is a finalized purchase, individual or group. It is immutable once
// created; fulfillment progress lives on its restaurant sub-orders.
type Order struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           *uint     `gorm:"index" json:"user_id,omitempty"`
	OrderType        string    `gorm:"index;not null;default:'individual'" json:"order_type"`
	CustomerName     string    `gorm:"default:'Customer'" json:"customer_name"`
	Phone            string    `gorm:"index;not null" json:"phone"`
	TempPhone        string    `json:"temp_phone,omitempty"`
	DeliveryLocation string    `gorm:"not null" json:"delivery_location"`
	DeliveryFee      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_fee"`
	Tax              Money     `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`
	Total            Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"-"`

	Items            []OrderItem       `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	RestaurantOrders []RestaurantOrder `gorm:"foreignKey:OrderID" json:"restaurant_orders,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a purchased line snapshot tied to one order.
type OrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	OrderID      uint      `gorm:"index;not null" json:"order_id"`
	MenuItemID   uint      `gorm:"index;not null" json:"menu_item_id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Subtotal     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
