package service

import (
	"strings"

	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/repository"

	"github.com/shopspring/decimal"
)

// MenuItemInput carries a partner's create or update of a menu item.
type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// MenuService serves customer menu browsing and the partner-side menu
// management.
type MenuService struct {
	menu     repository.MenuItemRepository
	partners repository.PartnerRepository
}

// NewMenuService creates the menu service.
func NewMenuService(menu repository.MenuItemRepository, partners repository.PartnerRepository) *MenuService {
	return &MenuService{menu: menu, partners: partners}
}

// ListByRestaurant returns an approved restaurant's menu.
func (s *MenuService) ListByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	app, err := s.partners.GetApprovedByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrRestaurantNotFound
	}
	return s.menu.ListByRestaurant(restaurantID)
}

// GetItem returns one menu item belonging to an approved restaurant.
func (s *MenuService) GetItem(id uint) (*models.MenuItem, error) {
	item, err := s.menu.GetApprovedItem(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

// Search returns menu items across approved restaurants whose name
// contains the query, case-insensitively.
func (s *MenuService) Search(query string) ([]models.MenuItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingFields
	}
	return s.menu.SearchApproved(query)
}

// SearchInRestaurant returns an approved restaurant's items whose name or
// description contains the query.
func (s *MenuService) SearchInRestaurant(restaurantID uint, query string) ([]models.MenuItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingFields
	}
	app, err := s.partners.GetApprovedByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrRestaurantNotFound
	}
	return s.menu.SearchByRestaurant(restaurantID, query)
}

// ListOwn returns the acting partner's menu, approved or not. Partners can
// manage their menu while still pending review.
func (s *MenuService) ListOwn(restaurantID uint) ([]models.MenuItem, error) {
	return s.menu.ListByRestaurant(restaurantID)
}

// CreateItem adds a menu item for the acting partner.
func (s *MenuService) CreateItem(restaurantID uint, in MenuItemInput) (*models.MenuItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrMissingFields
	}
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	item := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  strings.TrimSpace(in.Description),
		Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(in.Price)),
		Image:        strings.TrimSpace(in.Image),
	}
	if err := s.menu.Create(item); err != nil {
		return nil, err
	}

	logger.Infow("menu_item_created",
		"menu_item_id", item.ID,
		"restaurant_id", restaurantID,
	)
	return item, nil
}

// UpdateItem edits one of the acting partner's menu items.
func (s *MenuService) UpdateItem(restaurantID, itemID uint, in MenuItemInput) (*models.MenuItem, error) {
	item, err := s.ownItem(restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrMissingFields
	}
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	item.Name = in.Name
	item.Description = strings.TrimSpace(in.Description)
	item.Price = models.NewMoneyFromDecimal(decimal.NewFromFloat(in.Price))
	item.Image = strings.TrimSpace(in.Image)
	if err := s.menu.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes one of the acting partner's menu items.
func (s *MenuService) DeleteItem(restaurantID, itemID uint) error {
	item, err := s.ownItem(restaurantID, itemID)
	if err != nil {
		return err
	}
	if err := s.menu.Delete(item.ID); err != nil {
		return err
	}
	logger.Infow("menu_item_deleted",
		"menu_item_id", item.ID,
		"restaurant_id", restaurantID,
	)
	return nil
}

// ownItem fetches an item and checks it belongs to the acting partner.
func (s *MenuService) ownItem(restaurantID, itemID uint) (*models.MenuItem, error) {
	item, err := s.menu.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.RestaurantID != restaurantID {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}
