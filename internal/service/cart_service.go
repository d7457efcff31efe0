package service

import (
	"strings"

	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSummary is the priced breakdown of a cart.
type CartSummary struct {
	Subtotal    models.Money `json:"subtotal"`
	Tax         models.Money `json:"tax"`
	DeliveryFee models.Money `json:"delivery_fee"`
	Total       models.Money `json:"total"`
	ItemCount   int          `json:"item_count"`
}

// CartView is a cart's items plus its summary.
type CartView struct {
	CartID  uint              `json:"cart_id"`
	Items   []models.CartItem `json:"items"`
	Summary CartSummary       `json:"summary"`
}

// CartService handles the anonymous session cart.
type CartService struct {
	carts    repository.CartRepository
	menu     repository.MenuItemRepository
	orderCfg config.OrderConfig
}

// NewCartService creates the cart service.
func NewCartService(carts repository.CartRepository, menu repository.MenuItemRepository, orderCfg config.OrderConfig) *CartService {
	return &CartService{carts: carts, menu: menu, orderCfg: orderCfg}
}

// AddItem puts a menu item into the session's cart. Adding an item already
// in the cart increments its quantity. The item's name and price are
// snapshotted onto the cart line.
func (s *CartService) AddItem(sessionID string, menuItemID uint, quantity int) (*models.CartItem, error) {
	if strings.TrimSpace(sessionID) == "" || menuItemID == 0 {
		return nil, ErrMissingFields
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.menu.GetApprovedItem(menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	cart, err := s.carts.GetOrCreateBySession(sessionID, nil)
	if err != nil {
		return nil, err
	}

	line := &models.CartItem{
		CartID:       cart.ID,
		MenuItemID:   item.ID,
		RestaurantID: item.RestaurantID,
		ItemName:     item.Name,
		Price:        item.Price,
		Quantity:     quantity,
	}
	return s.carts.AddItem(cart.ID, line)
}

// GetCart returns the session's cart with its priced summary. An unknown
// session yields an empty cart rather than an error.
func (s *CartService) GetCart(sessionID string) (*CartView, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingFields
	}
	cart, err := s.carts.GetBySessionWithItems(sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartView{Items: []models.CartItem{}, Summary: s.summarize(nil)}, nil
	}
	return &CartView{
		CartID:  cart.ID,
		Items:   cart.Items,
		Summary: s.summarize(cart.Items),
	}, nil
}

// Summary returns just the priced breakdown of the session's cart.
func (s *CartService) Summary(sessionID string) (*CartSummary, error) {
	view, err := s.GetCart(sessionID)
	if err != nil {
		return nil, err
	}
	return &view.Summary, nil
}

// UpdateQuantity sets a cart line's quantity. Quantities below 1 are
// rejected; removal is a separate operation.
func (s *CartService) UpdateQuantity(sessionID string, cartItemID uint, quantity int) error {
	if strings.TrimSpace(sessionID) == "" || cartItemID == 0 {
		return ErrMissingFields
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	affected, err := s.carts.UpdateItemQuantity(sessionID, cartItemID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// RemoveItem deletes a cart line.
func (s *CartService) RemoveItem(sessionID string, cartItemID uint) error {
	if strings.TrimSpace(sessionID) == "" || cartItemID == 0 {
		return ErrMissingFields
	}
	affected, err := s.carts.DeleteItem(sessionID, cartItemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart empties the session's cart and reports how many lines were
// removed. Clearing an unknown session removes zero lines.
func (s *CartService) ClearCart(sessionID string) (int64, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, ErrMissingFields
	}
	cart, err := s.carts.GetBySession(sessionID)
	if err != nil {
		return 0, err
	}
	if cart == nil {
		return 0, nil
	}
	return s.carts.ClearItems(cart.ID)
}

// CountItems returns the number of lines in the session's cart.
func (s *CartService) CountItems(sessionID string) (int64, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, ErrMissingFields
	}
	return s.carts.CountItems(sessionID)
}

// summarize prices a set of cart lines: subtotal from snapshotted prices,
// tax on top, and the flat browsing delivery fee. An empty cart carries
// no fee.
func (s *CartService) summarize(items []models.CartItem) CartSummary {
	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Decimal.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	tax := subtotal.Mul(decimal.NewFromFloat(s.orderCfg.TaxRate))
	fee := decimal.Zero
	if len(items) > 0 {
		fee = decimal.NewFromFloat(s.orderCfg.CartDeliveryFee)
	}
	total := subtotal.Add(tax).Add(fee)
	return CartSummary{
		Subtotal:    models.NewMoneyFromDecimal(subtotal),
		Tax:         models.NewMoneyFromDecimal(tax),
		DeliveryFee: models.NewMoneyFromDecimal(fee),
		Total:       models.NewMoneyFromDecimal(total),
		ItemCount:   count,
	}
}
