package repository

import (
	"errors"
	"strings"

	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/models"

	"gorm.io/gorm"
)

// MenuItemRepository is the menu data access interface.
type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id uint) error
	GetByID(id uint) (*models.MenuItem, error)
	ListByRestaurant(restaurantID uint) ([]models.MenuItem, error)
	ListByIDs(ids []uint) ([]models.MenuItem, error)
	GetApprovedItem(id uint) (*models.MenuItem, error)
	SearchApproved(query string) ([]models.MenuItem, error)
	SearchByRestaurant(restaurantID uint, query string) ([]models.MenuItem, error)
}

// GormMenuItemRepository is the GORM implementation.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates the menu item repository.
func NewMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Create inserts a menu item.
func (r *GormMenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update replaces the editable fields of a menu item.
func (r *GormMenuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Model(&models.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"image":       item.Image,
		}).Error
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

// GetByID fetches a menu item by id.
func (r *GormMenuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByRestaurant returns a restaurant's menu sorted by name.
func (r *GormMenuItemRepository) ListByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByIDs returns menu items for the given ids.
func (r *GormMenuItemRepository) ListByIDs(ids []uint) ([]models.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.MenuItem
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetApprovedItem fetches a menu item whose owning restaurant is approved,
// preloading the restaurant for name display.
func (r *GormMenuItemRepository) GetApprovedItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Preload("Restaurant").
		Joins("JOIN partner_applications ON partner_applications.id = menu_items.restaurant_id").
		Where("menu_items.id = ? AND partner_applications.status = ?", id, constants.ApplicationStatusApproved).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchByRestaurant returns one restaurant's items matching the query in
// name or description.
func (r *GormMenuItemRepository) SearchByRestaurant(restaurantID uint, query string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SearchApproved returns items of approved restaurants matching the query in
// name or description.
func (r *GormMenuItemRepository) SearchApproved(query string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.db.Preload("Restaurant").
		Joins("JOIN partner_applications ON partner_applications.id = menu_items.restaurant_id").
		Where("partner_applications.status = ?", constants.ApplicationStatusApproved).
		Where("LOWER(menu_items.name) LIKE ? OR LOWER(menu_items.description) LIKE ?", like, like).
		Order("menu_items.name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
