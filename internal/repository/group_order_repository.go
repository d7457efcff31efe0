package repository

import (
	"errors"

	"github.com/yallaorder-next/internal/models"

	"gorm.io/gorm"
)

// MemberLine is one group member's share of an order line, joined with the
// underlying menu item for display.
type MemberLine struct {
	OrderItemID  uint         `json:"order_item_id"`
	MenuItemID   uint         `json:"menu_item_id"`
	ItemName     string       `json:"item_name"`
	Price        models.Money `json:"price"`
	Quantity     int          `json:"quantity"`
	Subtotal     models.Money `json:"subtotal"`
	RestaurantID uint         `json:"restaurant_id"`
}

// GroupOrderRepository covers group orders, their members, and the mapping
// from members to order line items.
type GroupOrderRepository interface {
	Create(group *models.GroupOrder) error
	CreateMember(member *models.GroupMember) error
	CreateMemberItems(items []models.GroupOrderItem) error
	GetByOrderID(orderID uint) (*models.GroupOrder, error)
	GetByID(id uint) (*models.GroupOrder, error)
	ListMemberLines(memberID uint) ([]MemberLine, error)
	WithTx(tx *gorm.DB) GroupOrderRepository
}

// GormGroupOrderRepository is the GORM implementation.
type GormGroupOrderRepository struct {
	db *gorm.DB
}

// NewGroupOrderRepository creates the group order repository.
func NewGroupOrderRepository(db *gorm.DB) *GormGroupOrderRepository {
	return &GormGroupOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormGroupOrderRepository) WithTx(tx *gorm.DB) GroupOrderRepository {
	if tx == nil {
		return r
	}
	return &GormGroupOrderRepository{db: tx}
}

// Create inserts a group order row.
func (r *GormGroupOrderRepository) Create(group *models.GroupOrder) error {
	return r.db.Create(group).Error
}

// CreateMember inserts a group member row.
func (r *GormGroupOrderRepository) CreateMember(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// CreateMemberItems links order line items to group members in one batch.
func (r *GormGroupOrderRepository) CreateMemberItems(items []models.GroupOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// GetByOrderID fetches the group record of an order with members preloaded,
// ordered by each member's position in the group.
func (r *GormGroupOrderRepository) GetByOrderID(orderID uint) (*models.GroupOrder, error) {
	var group models.GroupOrder
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("person_index ASC")
	}).Where("order_id = ?", orderID).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByID fetches a group order with members preloaded.
func (r *GormGroupOrderRepository) GetByID(id uint) (*models.GroupOrder, error) {
	var group models.GroupOrder
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("person_index ASC")
	}).First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListMemberLines returns a member's order lines joined with menu items.
func (r *GormGroupOrderRepository) ListMemberLines(memberID uint) ([]MemberLine, error) {
	var lines []MemberLine
	err := r.db.Model(&models.GroupOrderItem{}).
		Select(`order_items.id AS order_item_id,
			order_items.menu_item_id,
			menu_items.name AS item_name,
			menu_items.price,
			order_items.quantity,
			order_items.subtotal,
			order_items.restaurant_id`).
		Joins("JOIN order_items ON order_items.id = group_order_items.order_item_id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("group_order_items.group_member_id = ?", memberID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
