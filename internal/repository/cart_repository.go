package repository

import (
	"errors"
	"time"

	"github.com/yallaorder-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface. Carts are keyed by the
// anonymous session token.
type CartRepository interface {
	GetBySession(sessionID string) (*models.Cart, error)
	GetBySessionWithItems(sessionID string) (*models.Cart, error)
	GetOrCreateBySession(sessionID string, userID *uint) (*models.Cart, error)
	AddItem(cartID uint, item *models.CartItem) (*models.CartItem, error)
	UpdateItemQuantity(sessionID string, cartItemID uint, quantity int) (int64, error)
	DeleteItem(sessionID string, cartItemID uint) (int64, error)
	ClearItems(cartID uint) (int64, error)
	CountItems(sessionID string) (int64, error)
	ListItems(cartID uint) ([]models.CartItem, error)
	DeleteCart(cartID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction runs fn in a transaction.
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetBySession fetches a cart by session token.
func (r *GormCartRepository) GetBySession(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetBySessionWithItems fetches a cart and its items, newest item first.
func (r *GormCartRepository) GetBySessionWithItems(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateBySession resolves a cart, creating it on first use and
// touching the updated_at stamp otherwise.
func (r *GormCartRepository) GetOrCreateBySession(sessionID string, userID *uint) (*models.Cart, error) {
	cart, err := r.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if cart != nil {
		if err := r.db.Model(cart).Update("updated_at", now).Error; err != nil {
			return nil, err
		}
		return cart, nil
	}
	cart = &models.Cart{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem inserts a cart line or increments the quantity of an existing one
// for the same menu item.
func (r *GormCartRepository) AddItem(cartID uint, item *models.CartItem) (*models.CartItem, error) {
	var existing models.CartItem
	err := r.db.Where("cart_id = ? AND menu_item_id = ?", cartID, item.MenuItemID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item.CartID = cartID
		if err := r.db.Create(item).Error; err != nil {
			return nil, err
		}
		return item, nil
	}
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"quantity":   existing.Quantity + item.Quantity,
		"updated_at": time.Now(),
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	existing.Quantity += item.Quantity
	return &existing, nil
}

// UpdateItemQuantity sets a line's quantity, scoped to the owning session.
// Returns the number of affected rows.
func (r *GormCartRepository) UpdateItemQuantity(sessionID string, cartItemID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id IN (?)", cartItemID,
			r.db.Model(&models.Cart{}).Select("id").Where("session_id = ?", sessionID)).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DeleteItem removes a line, scoped to the owning session.
func (r *GormCartRepository) DeleteItem(sessionID string, cartItemID uint) (int64, error) {
	result := r.db.Where("id = ? AND cart_id IN (?)", cartItemID,
		r.db.Model(&models.Cart{}).Select("id").Where("session_id = ?", sessionID)).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ClearItems removes all lines of a cart and reports how many were removed.
func (r *GormCartRepository) ClearItems(cartID uint) (int64, error) {
	result := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// CountItems counts the lines in a session's cart.
func (r *GormCartRepository) CountItems(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

// ListItems returns a cart's lines.
func (r *GormCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteCart removes a cart row and its items.
func (r *GormCartRepository) DeleteCart(cartID uint) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Cart{}, cartID).Error
}
