package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestCheckoutCreatesOrderAndDeletesCart(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Koshary El Tahrir", "koshary@example.com")
	r2 := env.approvedRestaurant(t, "Pizza Roma", "roma@example.com")
	a := env.menuItem(t, r1.ID, "Koshary Large", 65)
	b := env.menuItem(t, r2.ID, "Margherita", 120)

	if _, err := env.cart.AddItem("sess-co", a.ID, 1); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if _, err := env.cart.AddItem("sess-co", b.ID, 1); err != nil {
		t.Fatalf("add b: %v", err)
	}

	order, err := env.orders.Checkout(CheckoutInput{
		SessionID:        "sess-co",
		Phone:            "01012345678",
		DeliveryLocation: "Dokki, Giza",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// subtotal 185, tax 25.90, checkout fee 20, total 230.90
	assertMoney(t, order.DeliveryFee, 20, "delivery fee")
	if !order.Tax.Decimal.Equal(decimal.NewFromFloat(25.90)) {
		t.Fatalf("tax = %s, want 25.90", order.Tax.String())
	}
	if !order.Total.Decimal.Equal(decimal.NewFromFloat(230.90)) {
		t.Fatalf("total = %s, want 230.90", order.Total.String())
	}
	if order.CustomerName != constants.DefaultCustomerName {
		t.Fatalf("customer name = %q, want %q", order.CustomerName, constants.DefaultCustomerName)
	}

	// one sub-order per distinct restaurant
	var subs []models.RestaurantOrder
	if err := env.db.Where("order_id = ?", order.ID).Find(&subs).Error; err != nil {
		t.Fatalf("load sub-orders: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("sub-orders = %d, want 2", len(subs))
	}
	for _, sub := range subs {
		if sub.Status != constants.RestaurantOrderStatusPending {
			t.Fatalf("sub-order status = %q, want pending", sub.Status)
		}
	}

	// cart row is gone, not just emptied
	var cartCount int64
	if err := env.db.Model(&models.Cart{}).Where("session_id = ?", "sess-co").Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("cart rows = %d, want 0", cartCount)
	}
}

func TestCheckoutRepricesFromLiveMenu(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Koshary", "k5@example.com")
	item := env.menuItem(t, r.ID, "Plate", 50)

	if _, err := env.cart.AddItem("sess-rp", item.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	// price changes after the item was carted
	if err := env.db.Model(item).Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(80))).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}

	order, err := env.orders.Checkout(CheckoutInput{
		SessionID:        "sess-rp",
		Phone:            "0101",
		DeliveryLocation: "Maadi",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var items []models.OrderItem
	if err := env.db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	assertMoney(t, items[0].Subtotal, 160, "line subtotal")
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	// a session with no cart at all is not found
	_, err := env.orders.Checkout(CheckoutInput{
		SessionID:        "sess-none",
		Phone:            "0101",
		DeliveryLocation: "Maadi",
	})
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("unknown session err = %v, want ErrCartNotFound", err)
	}

	// an existing cart with zero lines is rejected as empty
	r := env.approvedRestaurant(t, "Koshary", "k6@example.com")
	item := env.menuItem(t, r.ID, "Plate", 50)
	line, err := env.cart.AddItem("sess-drained", item.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := env.cart.RemoveItem("sess-drained", line.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err = env.orders.Checkout(CheckoutInput{
		SessionID:        "sess-drained",
		Phone:            "0101",
		DeliveryLocation: "Maadi",
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("drained cart err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutMissingFields(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.Checkout(CheckoutInput{SessionID: "s", Phone: "0101"})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
}

func TestConfirmOrderIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r6@example.com")
	item := env.menuItem(t, r.ID, "Margherita", 120)

	order, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Zamalek",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 120}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	first, err := env.orders.ConfirmOrder(order.ID)
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("sub-orders = %d, want 1", len(first))
	}
	second, err := env.orders.ConfirmOrder(order.ID)
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if len(second) != 1 || second[0].Created {
		t.Fatalf("second confirm = %+v, want the existing sub-order", second)
	}
	if first[0].RestaurantOrder.ID != second[0].RestaurantOrder.ID {
		t.Fatalf("sub-order ids differ: %d vs %d", first[0].RestaurantOrder.ID, second[0].RestaurantOrder.ID)
	}

	var count int64
	if err := env.db.Model(&models.RestaurantOrder{}).
		Where("order_id = ? AND restaurant_id = ?", order.ID, r.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("sub-order rows = %d, want 1", count)
	}
}

func TestConfirmOrderOnlyCoversOrderedRestaurants(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Roma", "r12@example.com")
	bystander := env.approvedRestaurant(t, "Koshary", "k12@example.com")
	item := env.menuItem(t, r1.ID, "Margherita", 120)

	order, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Zamalek",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 120}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	results, err := env.orders.ConfirmOrder(order.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	for _, res := range results {
		if res.RestaurantOrder.RestaurantID == bystander.ID {
			t.Fatalf("sub-order minted for restaurant %d with no lines", bystander.ID)
		}
	}

	var count int64
	if err := env.db.Model(&models.RestaurantOrder{}).
		Where("restaurant_id = ?", bystander.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("sub-order rows for uninvolved restaurant = %d, want 0", count)
	}
}

func TestPlaceOrderHonorsSubmittedSubtotals(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r13@example.com")
	item := env.menuItem(t, r.ID, "Margherita", 120)

	// the submitted subtotal wins even when it disagrees with the menu
	order, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Zamalek",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 2, Subtotal: 199.5}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	var items []models.OrderItem
	if err := env.db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if !items[0].Subtotal.Decimal.Equal(decimal.NewFromFloat(199.5)) {
		t.Fatalf("line subtotal = %s, want 199.5", items[0].Subtotal.String())
	}

	if _, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Zamalek",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("missing subtotal err = %v, want ErrInvalidPrice", err)
	}
}

func TestListRestaurantOrdersScopesLinesAndSubtotal(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Roma", "r14@example.com")
	r2 := env.approvedRestaurant(t, "Koshary", "k14@example.com")
	a := env.menuItem(t, r1.ID, "Margherita", 120)
	b := env.menuItem(t, r2.ID, "Plate", 45)

	if _, err := env.cart.AddItem("sess-scope", a.ID, 1); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if _, err := env.cart.AddItem("sess-scope", b.ID, 2); err != nil {
		t.Fatalf("add b: %v", err)
	}
	if _, err := env.orders.Checkout(CheckoutInput{
		SessionID:        "sess-scope",
		Phone:            "0101",
		DeliveryLocation: "Giza",
	}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	entries, err := env.orders.ListRestaurantOrders(r2.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("queue entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Order == nil {
		t.Fatal("parent order not loaded")
	}
	if len(entry.Order.Items) != 1 {
		t.Fatalf("lines = %d, want only this restaurant's line", len(entry.Order.Items))
	}
	if entry.Order.Items[0].MenuItemID != b.ID {
		t.Fatalf("line item = %d, want %d", entry.Order.Items[0].MenuItemID, b.ID)
	}
	assertMoney(t, entry.Subtotal, 90, "queue subtotal")
}

func TestOrderSummary(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r15@example.com")
	item := env.menuItem(t, r.ID, "Margherita", 120)

	if _, err := env.cart.AddItem("sess-sum", item.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	order, err := env.orders.Checkout(CheckoutInput{
		SessionID:        "sess-sum",
		Phone:            "0101",
		DeliveryLocation: "Giza",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	summary, err := env.orders.OrderSummary(order.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	assertMoney(t, summary.Subtotal, 240, "subtotal")
	assertMoney(t, summary.DeliveryFee, 20, "delivery fee")
	if !summary.Tax.Decimal.Equal(decimal.NewFromFloat(33.60)) {
		t.Fatalf("tax = %s, want 33.60", summary.Tax.String())
	}
	if !summary.Total.Decimal.Equal(decimal.NewFromFloat(293.60)) {
		t.Fatalf("total = %s, want 293.60", summary.Total.String())
	}
	if summary.ItemCount != 2 {
		t.Fatalf("item count = %d, want 2", summary.ItemCount)
	}
	if summary.Status != constants.RestaurantOrderStatusPending {
		t.Fatalf("status = %q, want pending", summary.Status)
	}

	if _, err := env.orders.OrderSummary(9999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("unknown order err = %v, want ErrOrderNotFound", err)
	}
}

func TestUpdateStatusNormalizesCase(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r7@example.com")
	item := env.menuItem(t, r.ID, "Pepperoni", 150)

	order, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Heliopolis",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 150}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var sub models.RestaurantOrder
	if err := env.db.Where("order_id = ?", order.ID).First(&sub).Error; err != nil {
		t.Fatalf("load sub-order: %v", err)
	}

	updated, err := env.orders.UpdateRestaurantStatus(sub.ID, r.ID, "On_The_Way")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != constants.RestaurantOrderStatusOnTheWay {
		t.Fatalf("status = %q, want on_the_way", updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r8@example.com")
	item := env.menuItem(t, r.ID, "Margherita", 120)

	order, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Nasr City",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 120}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var sub models.RestaurantOrder
	if err := env.db.Where("order_id = ?", order.ID).First(&sub).Error; err != nil {
		t.Fatalf("load sub-order: %v", err)
	}

	_, err = env.orders.UpdateRestaurantStatus(sub.ID, r.ID, "shipped")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	// the rejection names the accepted values
	for _, want := range env.orders.ValidStatuses() {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %q", err.Error(), want)
		}
	}
	// delivered to cancelled is allowed, the set is unordered
	if _, err := env.orders.UpdateRestaurantStatus(sub.ID, r.ID, "delivered"); err != nil {
		t.Fatalf("to delivered: %v", err)
	}
	if _, err := env.orders.UpdateRestaurantStatus(sub.ID, r.ID, "cancelled"); err != nil {
		t.Fatalf("to cancelled: %v", err)
	}
}

func TestUpdateStatusScopedToOwningRestaurant(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Roma", "r9@example.com")
	r2 := env.approvedRestaurant(t, "Koshary", "k9@example.com")
	item := env.menuItem(t, r1.ID, "Margherita", 120)

	order, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Giza",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 120}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var sub models.RestaurantOrder
	if err := env.db.Where("order_id = ?", order.ID).First(&sub).Error; err != nil {
		t.Fatalf("load sub-order: %v", err)
	}

	if _, err := env.orders.UpdateRestaurantStatus(sub.ID, r2.ID, "preparing"); !errors.Is(err, ErrRestaurantOrderNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantOrderNotFound", err)
	}
}

func TestTrackByPhoneMatchesTempPhone(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r10@example.com")
	item := env.menuItem(t, r.ID, "Margherita", 120)

	if _, err := env.orders.PlaceOrder(PlaceOrderInput{
		Phone:            "0101",
		TempPhone:        "0999",
		DeliveryLocation: "Downtown",
		Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 120}},
	}); err != nil {
		t.Fatalf("place: %v", err)
	}

	views, err := env.orders.TrackByPhone("0999")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("orders = %d, want 1", len(views))
	}
	if views[0].Status != constants.RestaurantOrderStatusPending {
		t.Fatalf("status = %q, want pending", views[0].Status)
	}
}

func TestPendingCount(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "r11@example.com")
	item := env.menuItem(t, r.ID, "Margherita", 120)

	for i := 0; i < 3; i++ {
		if _, err := env.orders.PlaceOrder(PlaceOrderInput{
			Phone:            "0101",
			DeliveryLocation: "Downtown",
			Lines:            []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 120}},
		}); err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
	}

	count, err := env.orders.PendingCount(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("pending count: %v", err)
	}
	if count != 3 {
		t.Fatalf("pending = %d, want 3", count)
	}
}
