package service

import (
	"errors"
	"testing"

	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestCreateGroupOrderLinksMembersToLines(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Koshary", "g1@example.com")
	r2 := env.approvedRestaurant(t, "Roma", "g2@example.com")
	koshary := env.menuItem(t, r1.ID, "Koshary Large", 65)
	pizza := env.menuItem(t, r2.ID, "Margherita", 120)

	order, err := env.groups.Create(CreateGroupOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Office, Smart Village",
		NumPeople:        2,
		Members: []GroupMemberInput{
			{Name: "Ali", Items: []OrderLineInput{{MenuItemID: koshary.ID, Quantity: 2, Subtotal: 130}}},
			{Name: "Mona", Items: []OrderLineInput{{MenuItemID: pizza.ID, Quantity: 1, Subtotal: 120}}},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.OrderType != constants.OrderTypeGroup {
		t.Fatalf("order type = %q, want group", order.OrderType)
	}
	if order.CustomerName != constants.DefaultGroupCustomerName {
		t.Fatalf("customer name = %q, want %q", order.CustomerName, constants.DefaultGroupCustomerName)
	}

	// subtotal 250, tax 35, fee 20, total 305
	assertMoney(t, order.Total, 305, "total")

	view, err := env.groups.GetByOrderID(order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.NumPeople != 2 || len(view.Members) != 2 {
		t.Fatalf("members = %d (num_people %d), want 2", len(view.Members), view.NumPeople)
	}
	if view.Members[0].MemberName != "Ali" || view.Members[0].PersonIndex != 1 {
		t.Fatalf("first member = %+v", view.Members[0])
	}
	if len(view.Members[0].Items) != 1 || view.Members[0].Items[0].ItemName != "Koshary Large" {
		t.Fatalf("first member lines = %+v", view.Members[0].Items)
	}
	if view.Members[1].Items[0].ItemName != "Margherita" {
		t.Fatalf("second member lines = %+v", view.Members[1].Items)
	}

	// the fan-out still happens for group orders
	var subs int64
	if err := env.db.Model(&models.RestaurantOrder{}).Where("order_id = ?", order.ID).Count(&subs).Error; err != nil {
		t.Fatalf("count sub-orders: %v", err)
	}
	if subs != 2 {
		t.Fatalf("sub-orders = %d, want 2", subs)
	}
}

func TestCreateGroupOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Koshary", "g3@example.com")
	item := env.menuItem(t, r.ID, "Plate", 45)

	base := CreateGroupOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Downtown",
	}

	in := base
	in.NumPeople = 0
	in.Members = []GroupMemberInput{{Name: "Ali", Items: []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 45}}}}
	if _, err := env.groups.Create(in); !errors.Is(err, ErrInvalidNumPeople) {
		t.Fatalf("zero people err = %v, want ErrInvalidNumPeople", err)
	}

	in = base
	in.NumPeople = 2
	in.Members = []GroupMemberInput{{Name: "Ali", Items: []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 45}}}}
	if _, err := env.groups.Create(in); !errors.Is(err, ErrMemberItemMismatch) {
		t.Fatalf("member count mismatch err = %v, want ErrMemberItemMismatch", err)
	}

	in = base
	in.NumPeople = 1
	in.Members = []GroupMemberInput{{Name: "Ali"}}
	if _, err := env.groups.Create(in); !errors.Is(err, ErrMemberItemMismatch) {
		t.Fatalf("memberless items err = %v, want ErrMemberItemMismatch", err)
	}

	in = base
	in.NumPeople = 1
	in.Members = []GroupMemberInput{{Name: "Ali", Items: []OrderLineInput{{MenuItemID: item.ID, Quantity: 1}}}}
	if _, err := env.groups.Create(in); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("missing subtotal err = %v, want ErrInvalidPrice", err)
	}
}

func TestCreateGroupOrderHonorsSubmittedSubtotals(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Koshary", "g4@example.com")
	item := env.menuItem(t, r.ID, "Plate", 45)

	// the payload's subtotal stands even when the menu says otherwise
	order, err := env.groups.Create(CreateGroupOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Downtown",
		NumPeople:        1,
		Members: []GroupMemberInput{
			{Name: "Ali", Items: []OrderLineInput{{MenuItemID: item.ID, Quantity: 2, Subtotal: 75.5}}},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var items []models.OrderItem
	if err := env.db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if !items[0].Subtotal.Decimal.Equal(decimal.NewFromFloat(75.5)) {
		t.Fatalf("line subtotal = %s, want 75.5", items[0].Subtotal.String())
	}
}

func TestConfirmGroupOrder(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Koshary", "g5@example.com")
	item := env.menuItem(t, r.ID, "Plate", 45)

	order, err := env.groups.Create(CreateGroupOrderInput{
		Phone:            "0101",
		DeliveryLocation: "Downtown",
		NumPeople:        1,
		Members: []GroupMemberInput{
			{Name: "Ali", Items: []OrderLineInput{{MenuItemID: item.ID, Quantity: 1, Subtotal: 45}}},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := env.groups.Confirm(order.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(results) != 1 || results[0].Created {
		t.Fatalf("confirm = %+v, want the sub-order created at placement", results)
	}

	if _, err := env.groups.Confirm(9999); !errors.Is(err, ErrGroupOrderNotFound) {
		t.Fatalf("unknown group err = %v, want ErrGroupOrderNotFound", err)
	}
}

func TestGetGroupOrderUnknown(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.groups.GetByOrderID(42); !errors.Is(err, ErrGroupOrderNotFound) {
		t.Fatalf("err = %v, want ErrGroupOrderNotFound", err)
	}
}
