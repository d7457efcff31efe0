package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/yallaorder-next/internal/cache"
	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/queue"
	"github.com/yallaorder-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLineInput is one requested line when placing an order directly.
// Subtotal is the caller's pre-computed line total; direct placement and
// group orders take it as given instead of repricing. RestaurantID may be
// supplied to skip the menu lookup.
type OrderLineInput struct {
	MenuItemID   uint    `json:"menu_item_id"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
	RestaurantID uint    `json:"restaurant_id"`
}

// CheckoutInput carries customer details for converting a cart into an order.
type CheckoutInput struct {
	SessionID        string
	UserID           *uint
	CustomerName     string
	Phone            string
	TempPhone        string
	DeliveryLocation string
}

// PlaceOrderInput carries a direct order request with explicit lines.
type PlaceOrderInput struct {
	UserID           *uint
	CustomerName     string
	Phone            string
	TempPhone        string
	DeliveryLocation string
	Lines            []OrderLineInput
}

// OrderView is an order with its items and the coarse customer-facing status.
type OrderView struct {
	models.Order
	Status string `json:"status"`
}

// ConfirmResult reports the outcome of confirming one restaurant's share.
type ConfirmResult struct {
	RestaurantOrder *models.RestaurantOrder `json:"restaurant_order"`
	Created         bool                    `json:"created"`
}

// RestaurantOrderQueueEntry is one sub-order on a restaurant's queue. The
// parent order is trimmed to that restaurant's lines and Subtotal covers
// only those lines.
type RestaurantOrderQueueEntry struct {
	models.RestaurantOrder
	Subtotal models.Money `json:"subtotal"`
}

// OrderSummaryView is the priced breakdown of a committed order.
type OrderSummaryView struct {
	OrderID     uint         `json:"order_id"`
	OrderType   string       `json:"order_type"`
	Status      string       `json:"status"`
	ItemCount   int          `json:"item_count"`
	Subtotal    models.Money `json:"subtotal"`
	Tax         models.Money `json:"tax"`
	DeliveryFee models.Money `json:"delivery_fee"`
	Total       models.Money `json:"total"`
}

// OrderService owns order placement, the per-restaurant fan-out, and the
// restaurant-side fulfillment workflow.
type OrderService struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
	menu   repository.MenuItemRepository
	queue  *queue.Client
	cfg    config.OrderConfig
}

// NewOrderService creates the order service.
func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	menu repository.MenuItemRepository,
	queueClient *queue.Client,
	cfg config.OrderConfig,
) *OrderService {
	return &OrderService{
		orders: orders,
		carts:  carts,
		menu:   menu,
		queue:  queueClient,
		cfg:    cfg,
	}
}

// pricedLine is an order line resolved to its restaurant and line total.
type pricedLine struct {
	menuItemID   uint
	restaurantID uint
	quantity     int
	subtotal     decimal.Decimal
}

// priceLines resolves each requested line against the live menu and prices
// it at the item's current price, not any snapshot.
func (s *OrderService) priceLines(lines []OrderLineInput) ([]pricedLine, decimal.Decimal, error) {
	priced := make([]pricedLine, 0, len(lines))
	subtotal := decimal.Zero
	for _, ln := range lines {
		if ln.MenuItemID == 0 {
			return nil, decimal.Zero, ErrMissingFields
		}
		if ln.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidQuantity
		}
		item, err := s.menu.GetApprovedItem(ln.MenuItemID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if item == nil {
			return nil, decimal.Zero, ErrMenuItemNotFound
		}
		lineTotal := item.Price.Decimal.Mul(decimal.NewFromInt(int64(ln.Quantity)))
		priced = append(priced, pricedLine{
			menuItemID:   item.ID,
			restaurantID: item.RestaurantID,
			quantity:     ln.Quantity,
			subtotal:     lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return priced, subtotal, nil
}

// trustLines takes each line's caller-supplied subtotal as given instead
// of repricing. The menu is consulted only to resolve a line's restaurant
// when the caller did not name one.
func (s *OrderService) trustLines(lines []OrderLineInput) ([]pricedLine, decimal.Decimal, error) {
	priced := make([]pricedLine, 0, len(lines))
	subtotal := decimal.Zero
	for _, ln := range lines {
		if ln.MenuItemID == 0 {
			return nil, decimal.Zero, ErrMissingFields
		}
		if ln.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidQuantity
		}
		lineTotal := decimal.NewFromFloat(ln.Subtotal)
		if lineTotal.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, ErrInvalidPrice
		}
		restaurantID := ln.RestaurantID
		if restaurantID == 0 {
			item, err := s.menu.GetApprovedItem(ln.MenuItemID)
			if err != nil {
				return nil, decimal.Zero, err
			}
			if item == nil {
				return nil, decimal.Zero, ErrMenuItemNotFound
			}
			restaurantID = item.RestaurantID
		}
		priced = append(priced, pricedLine{
			menuItemID:   ln.MenuItemID,
			restaurantID: restaurantID,
			quantity:     ln.Quantity,
			subtotal:     lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return priced, subtotal, nil
}

// buildOrder assembles the order row from priced lines and customer details.
func (s *OrderService) buildOrder(in PlaceOrderInput, orderType string, subtotal decimal.Decimal) *models.Order {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		if orderType == constants.OrderTypeGroup {
			name = constants.DefaultGroupCustomerName
		} else {
			name = constants.DefaultCustomerName
		}
	}
	tax := subtotal.Mul(decimal.NewFromFloat(s.cfg.TaxRate))
	fee := decimal.NewFromFloat(s.cfg.CheckoutDeliveryFee)
	return &models.Order{
		UserID:           in.UserID,
		OrderType:        orderType,
		CustomerName:     name,
		Phone:            strings.TrimSpace(in.Phone),
		TempPhone:        strings.TrimSpace(in.TempPhone),
		DeliveryLocation: strings.TrimSpace(in.DeliveryLocation),
		DeliveryFee:      models.NewMoneyFromDecimal(fee),
		Tax:              models.NewMoneyFromDecimal(tax),
		Total:            models.NewMoneyFromDecimal(subtotal.Add(tax).Add(fee)),
	}
}

// createWithFanOut writes the order, its items, and one sub-order per
// distinct restaurant inside one transaction. Returns the created items so
// callers can link them further.
func (s *OrderService) createWithFanOut(order *models.Order, priced []pricedLine, extra func(tx *gorm.DB, items []models.OrderItem) error) ([]models.OrderItem, error) {
	var items []models.OrderItem
	var subIDs []queue.RestaurantOrderNotifyPayload

	err := s.orders.Transaction(func(tx *gorm.DB) error {
		txOrders := s.orders.WithTx(tx)
		if err := txOrders.Create(order); err != nil {
			return err
		}

		items = make([]models.OrderItem, 0, len(priced))
		seen := make(map[uint]bool)
		restaurantIDs := make([]uint, 0)
		for _, pl := range priced {
			items = append(items, models.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   pl.menuItemID,
				RestaurantID: pl.restaurantID,
				Quantity:     pl.quantity,
				Subtotal:     models.NewMoneyFromDecimal(pl.subtotal),
			})
			if !seen[pl.restaurantID] {
				seen[pl.restaurantID] = true
				restaurantIDs = append(restaurantIDs, pl.restaurantID)
			}
		}
		if err := txOrders.CreateItems(items); err != nil {
			return err
		}

		for _, rid := range restaurantIDs {
			sub, _, err := txOrders.ConfirmRestaurantOrder(order.ID, rid)
			if err != nil {
				return err
			}
			subIDs = append(subIDs, queue.RestaurantOrderNotifyPayload{
				RestaurantOrderID: sub.ID,
				OrderID:           order.ID,
				RestaurantID:      rid,
			})
		}

		if extra != nil {
			return extra(tx, items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, payload := range subIDs {
		if err := s.queue.EnqueueRestaurantOrderNotify(payload); err != nil {
			logger.Warnw("order_notify_enqueue_failed",
				"order_id", payload.OrderID,
				"restaurant_id", payload.RestaurantID,
				"error", err,
			)
		}
		_ = cache.DelPendingOrderCount(context.Background(), payload.RestaurantID)
	}
	return items, nil
}

// Checkout converts the session's cart into an order. Lines are repriced
// from the live menu, the checkout delivery fee applies, and the cart is
// deleted once the order is committed.
func (s *OrderService) Checkout(in CheckoutInput) (*models.Order, error) {
	if strings.TrimSpace(in.SessionID) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.DeliveryLocation) == "" {
		return nil, ErrMissingFields
	}

	cart, err := s.carts.GetBySessionWithItems(in.SessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]OrderLineInput, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, OrderLineInput{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	priced, subtotal, err := s.priceLines(lines)
	if err != nil {
		return nil, err
	}

	order := s.buildOrder(PlaceOrderInput{
		UserID:           in.UserID,
		CustomerName:     in.CustomerName,
		Phone:            in.Phone,
		TempPhone:        in.TempPhone,
		DeliveryLocation: in.DeliveryLocation,
	}, constants.OrderTypeIndividual, subtotal)

	_, err = s.createWithFanOut(order, priced, func(tx *gorm.DB, _ []models.OrderItem) error {
		return s.carts.WithTx(tx).DeleteCart(cart.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_checked_out",
		"order_id", order.ID,
		"session_id", in.SessionID,
		"total", order.Total.String(),
	)
	return order, nil
}

// PlaceOrder creates an order directly from explicit lines, bypassing the
// cart. Clients build the payload themselves and each line arrives with
// its own subtotal, which is taken as given.
func (s *OrderService) PlaceOrder(in PlaceOrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.DeliveryLocation) == "" {
		return nil, ErrMissingFields
	}
	if len(in.Lines) == 0 {
		return nil, ErrMissingFields
	}

	priced, subtotal, err := s.trustLines(in.Lines)
	if err != nil {
		return nil, err
	}

	order := s.buildOrder(in, constants.OrderTypeIndividual, subtotal)
	if _, err := s.createWithFanOut(order, priced, nil); err != nil {
		return nil, err
	}

	logger.Infow("order_placed",
		"order_id", order.ID,
		"total", order.Total.String(),
	)
	return order, nil
}

// GetOrder returns an order with its items and the customer-facing status,
// taken from the order's first sub-order.
func (s *OrderService) GetOrder(id uint) (*OrderView, error) {
	order, err := s.orders.GetByIDWithItems(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	status, err := s.orders.FirstRestaurantOrderStatus(order.ID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = constants.RestaurantOrderStatusPending
	}
	return &OrderView{Order: *order, Status: status}, nil
}

// ListUserOrders returns a user's orders with their statuses, most recent
// first.
func (s *OrderService) ListUserOrders(userID uint) ([]OrderView, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.attachStatuses(orders)
}

// TrackByPhone returns orders placed under a phone number, most recent
// first. Matches both the account phone and a guest's temp phone.
func (s *OrderService) TrackByPhone(phone string) ([]OrderView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrMissingFields
	}
	orders, err := s.orders.ListByPhone(phone)
	if err != nil {
		return nil, err
	}
	return s.attachStatuses(orders)
}

func (s *OrderService) attachStatuses(orders []models.Order) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		status, err := s.orders.FirstRestaurantOrderStatus(o.ID)
		if err != nil {
			return nil, err
		}
		if status == "" {
			status = constants.RestaurantOrderStatusPending
		}
		views = append(views, OrderView{Order: o, Status: status})
	}
	return views, nil
}

// ConfirmOrder (re-)creates the per-restaurant sub-orders for an order,
// one per distinct restaurant among its committed items. Restaurants that
// already have a sub-order keep it unchanged, so confirming twice is safe.
func (s *OrderService) ConfirmOrder(orderID uint) ([]ConfirmResult, error) {
	if orderID == 0 {
		return nil, ErrMissingFields
	}
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	restaurantIDs, err := s.orders.DistinctRestaurantIDs(orderID)
	if err != nil {
		return nil, err
	}

	results := make([]ConfirmResult, 0, len(restaurantIDs))
	for _, rid := range restaurantIDs {
		sub, created, err := s.orders.ConfirmRestaurantOrder(orderID, rid)
		if err != nil {
			return nil, err
		}
		if created {
			if err := s.queue.EnqueueRestaurantOrderNotify(queue.RestaurantOrderNotifyPayload{
				RestaurantOrderID: sub.ID,
				OrderID:           orderID,
				RestaurantID:      rid,
			}); err != nil {
				logger.Warnw("order_notify_enqueue_failed",
					"order_id", orderID,
					"restaurant_id", rid,
					"error", err,
				)
			}
			_ = cache.DelPendingOrderCount(context.Background(), rid)
		}
		results = append(results, ConfirmResult{RestaurantOrder: sub, Created: created})
	}
	return results, nil
}

// ListRestaurantOrders returns a restaurant's queue, most recent first.
// Each entry carries the parent order restricted to that restaurant's
// lines and the subtotal over just those lines.
func (s *OrderService) ListRestaurantOrders(restaurantID uint) ([]RestaurantOrderQueueEntry, error) {
	if restaurantID == 0 {
		return nil, ErrMissingFields
	}
	subs, err := s.orders.ListRestaurantOrders(restaurantID)
	if err != nil {
		return nil, err
	}
	entries := make([]RestaurantOrderQueueEntry, 0, len(subs))
	for _, sub := range subs {
		subtotal := decimal.Zero
		if sub.Order != nil {
			for _, it := range sub.Order.Items {
				subtotal = subtotal.Add(it.Subtotal.Decimal)
			}
		}
		entries = append(entries, RestaurantOrderQueueEntry{
			RestaurantOrder: sub,
			Subtotal:        models.NewMoneyFromDecimal(subtotal),
		})
	}
	return entries, nil
}

// OrderSummary returns the priced breakdown of an order: the item subtotal
// recomputed from its committed lines plus the stored tax, fee, and total.
func (s *OrderService) OrderSummary(id uint) (*OrderSummaryView, error) {
	view, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	subtotal := decimal.Zero
	count := 0
	for _, it := range view.Items {
		subtotal = subtotal.Add(it.Subtotal.Decimal)
		count += it.Quantity
	}
	return &OrderSummaryView{
		OrderID:     view.ID,
		OrderType:   view.OrderType,
		Status:      view.Status,
		ItemCount:   count,
		Subtotal:    models.NewMoneyFromDecimal(subtotal),
		Tax:         view.Tax,
		DeliveryFee: view.DeliveryFee,
		Total:       view.Total,
	}, nil
}

// PendingCount returns how many of a restaurant's sub-orders are still
// pending, served from cache when fresh.
func (s *OrderService) PendingCount(ctx context.Context, restaurantID uint) (int64, error) {
	if restaurantID == 0 {
		return 0, ErrMissingFields
	}
	if count, ok, err := cache.GetPendingOrderCount(ctx, restaurantID); err == nil && ok {
		return count, nil
	}
	count, err := s.orders.CountPendingByRestaurant(restaurantID)
	if err != nil {
		return 0, err
	}
	if err := cache.SetPendingOrderCount(ctx, restaurantID, count); err != nil {
		logger.Warnw("pending_count_cache_set_failed",
			"restaurant_id", restaurantID,
			"error", err,
		)
	}
	return count, nil
}

// UpdateRestaurantStatus moves a sub-order to a new fulfillment status.
// Input is case-insensitive and must land in the configured status set;
// any transition within the set is allowed. The sub-order must belong to
// the acting restaurant.
func (s *OrderService) UpdateRestaurantStatus(restaurantOrderID, restaurantID uint, status string) (*models.RestaurantOrder, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized == "" {
		return nil, ErrMissingFields
	}
	if !s.isValidStatus(normalized) {
		return nil, fmt.Errorf("%w: valid values are %s", ErrInvalidStatus, strings.Join(s.ValidStatuses(), ", "))
	}

	sub, err := s.orders.GetRestaurantOrderByID(restaurantOrderID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.RestaurantID != restaurantID {
		return nil, ErrRestaurantOrderNotFound
	}

	from := sub.Status
	if err := s.orders.UpdateRestaurantOrderStatus(sub.ID, normalized); err != nil {
		return nil, err
	}
	sub.Status = normalized

	if err := s.queue.EnqueueRestaurantStatusAudit(queue.RestaurantStatusAuditPayload{
		RestaurantOrderID: sub.ID,
		RestaurantID:      restaurantID,
		FromStatus:        from,
		ToStatus:          normalized,
	}); err != nil {
		logger.Warnw("status_audit_enqueue_failed",
			"restaurant_order_id", sub.ID,
			"error", err,
		)
	}
	_ = cache.DelPendingOrderCount(context.Background(), restaurantID)

	logger.Infow("restaurant_order_status_updated",
		"restaurant_order_id", sub.ID,
		"restaurant_id", restaurantID,
		"from", from,
		"to", normalized,
	)
	return sub, nil
}

// ValidStatuses exposes the configured status set.
func (s *OrderService) ValidStatuses() []string {
	return s.cfg.ValidStatuses
}

func (s *OrderService) isValidStatus(status string) bool {
	for _, v := range s.cfg.ValidStatuses {
		if v == status {
			return true
		}
	}
	return false
}
