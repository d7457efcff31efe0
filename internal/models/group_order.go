package models

import (
	"time"
)

// GroupOrder extends an order for multi-participant checkout.
type GroupOrder struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	NumPeople int       `gorm:"not null" json:"num_people"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Members []GroupMember `gorm:"foreignKey:GroupOrderID" json:"members,omitempty"`
}

// TableName sets the table name.
func (GroupOrder) TableName() string {
	return "group_orders"
}

// GroupMember is one named participant, indexed from 1 in roster order.
type GroupMember struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	GroupOrderID uint      `gorm:"index;not null" json:"group_order_id"`
	MemberName   string    `gorm:"not null" json:"member_name"`
	PersonIndex  int       `gorm:"not null" json:"person_index"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName sets the table name.
func (GroupMember) TableName() string {
	return "group_members"
}

// GroupOrderItem attributes an order item to a group member.
type GroupOrderItem struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	GroupMemberID uint      `gorm:"index;not null" json:"group_member_id"`
	OrderItemID   uint      `gorm:"index;not null" json:"order_item_id"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// TableName sets the table name.
func (GroupOrderItem) TableName() string {
	return "group_order_items"
}
