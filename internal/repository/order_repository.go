package repository

import (
	"errors"
	"time"

	"github.com/yallaorder-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository covers orders, their line items, and the per-restaurant
// sub-orders that fan out of each placed order.
type OrderRepository interface {
	Create(order *models.Order) error
	CreateItems(items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDWithItems(id uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListByPhone(phone string) ([]models.Order, error)
	ListItems(orderID uint) ([]models.OrderItem, error)

	ConfirmRestaurantOrder(orderID, restaurantID uint) (*models.RestaurantOrder, bool, error)
	GetRestaurantOrderByID(id uint) (*models.RestaurantOrder, error)
	UpdateRestaurantOrderStatus(id uint, status string) error
	ListRestaurantOrders(restaurantID uint) ([]models.RestaurantOrder, error)
	CountPendingByRestaurant(restaurantID uint) (int64, error)
	FirstRestaurantOrderStatus(orderID uint) (string, error)
	DistinctRestaurantIDs(orderID uint) ([]uint, error)

	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction runs fn in a transaction.
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create inserts an order row.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItems inserts order line items in one batch.
func (r *GormOrderRepository) CreateItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// GetByID fetches an order.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByIDWithItems fetches an order with its line items preloaded.
func (r *GormOrderRepository) GetByIDWithItems(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns a user's orders, most recent first.
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByPhone returns orders placed under a phone number, most recent first.
// Both the account phone and the per-order temp phone are matched.
func (r *GormOrderRepository) ListByPhone(phone string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("phone = ? OR temp_phone = ?", phone, phone).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItems returns an order's line items.
func (r *GormOrderRepository) ListItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ConfirmRestaurantOrder inserts the sub-order for (order, restaurant) or
// leaves the existing row untouched. The second return reports whether a
// new row was created.
func (r *GormOrderRepository) ConfirmRestaurantOrder(orderID, restaurantID uint) (*models.RestaurantOrder, bool, error) {
	sub := &models.RestaurantOrder{
		OrderID:      orderID,
		RestaurantID: restaurantID,
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "restaurant_id"}},
		DoNothing: true,
	}).Create(sub)
	if result.Error != nil {
		return nil, false, result.Error
	}
	created := result.RowsAffected > 0
	if !created {
		var existing models.RestaurantOrder
		err := r.db.Where("order_id = ? AND restaurant_id = ?", orderID, restaurantID).
			First(&existing).Error
		if err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}
	return sub, true, nil
}

// GetRestaurantOrderByID fetches a sub-order with its parent order and items.
func (r *GormOrderRepository) GetRestaurantOrderByID(id uint) (*models.RestaurantOrder, error) {
	var sub models.RestaurantOrder
	err := r.db.Preload("Order").Preload("Order.Items").First(&sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateRestaurantOrderStatus writes a sub-order's status.
func (r *GormOrderRepository) UpdateRestaurantOrderStatus(id uint, status string) error {
	return r.db.Model(&models.RestaurantOrder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// ListRestaurantOrders returns a restaurant's sub-orders with parent
// orders, most recent first. Each parent order's items are restricted to
// the lines belonging to that restaurant.
func (r *GormOrderRepository) ListRestaurantOrders(restaurantID uint) ([]models.RestaurantOrder, error) {
	var subs []models.RestaurantOrder
	err := r.db.Preload("Order").
		Preload("Order.Items", "restaurant_id = ?", restaurantID).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// CountPendingByRestaurant counts a restaurant's sub-orders still pending.
func (r *GormOrderRepository) CountPendingByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.RestaurantOrder{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, "pending").
		Count(&count).Error
	return count, err
}

// FirstRestaurantOrderStatus returns the status of the order's earliest
// sub-order, or empty when none exist yet.
func (r *GormOrderRepository) FirstRestaurantOrderStatus(orderID uint) (string, error) {
	var sub models.RestaurantOrder
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sub.Status, nil
}

// DistinctRestaurantIDs returns the restaurants referenced by an order's items.
func (r *GormOrderRepository) DistinctRestaurantIDs(orderID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Distinct("restaurant_id").
		Pluck("restaurant_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
