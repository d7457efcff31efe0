package service

import (
	"errors"
	"testing"
)

func TestMenuCRUDScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Roma", "m1@example.com")
	r2 := env.approvedRestaurant(t, "Koshary", "m2@example.com")

	item, err := env.menu.CreateItem(r1.ID, MenuItemInput{Name: "Margherita", Price: 120})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// another restaurant cannot touch the item
	if _, err := env.menu.UpdateItem(r2.ID, item.ID, MenuItemInput{Name: "X", Price: 1}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("cross-owner update err = %v, want ErrMenuItemNotFound", err)
	}
	if err := env.menu.DeleteItem(r2.ID, item.ID); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("cross-owner delete err = %v, want ErrMenuItemNotFound", err)
	}

	updated, err := env.menu.UpdateItem(r1.ID, item.ID, MenuItemInput{Name: "Margherita XL", Price: 150})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Margherita XL" {
		t.Fatalf("name = %q", updated.Name)
	}
	assertMoney(t, updated.Price, 150, "price")

	if err := env.menu.DeleteItem(r1.ID, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.menu.GetItem(item.ID); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("get after delete err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestMenuCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "m3@example.com")

	if _, err := env.menu.CreateItem(r.ID, MenuItemInput{Price: 10}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("no name err = %v, want ErrMissingFields", err)
	}
	if _, err := env.menu.CreateItem(r.ID, MenuItemInput{Name: "Free", Price: 0}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("zero price err = %v, want ErrInvalidPrice", err)
	}
}

func TestMenuSearchIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "m4@example.com")
	env.menuItem(t, r.ID, "Margherita Pizza", 120)
	env.menuItem(t, r.ID, "Pasta", 90)

	items, err := env.menu.Search("PIZZA")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Margherita Pizza" {
		t.Fatalf("results = %+v", items)
	}

	if _, err := env.menu.Search("  "); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank query err = %v, want ErrMissingFields", err)
	}
}

func TestSearchInRestaurantScopesResults(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.approvedRestaurant(t, "Roma", "m6@example.com")
	r2 := env.approvedRestaurant(t, "Koshary", "m7@example.com")
	env.menuItem(t, r1.ID, "Margherita Pizza", 120)
	env.menuItem(t, r2.ID, "Pizza Fetir", 70)

	items, err := env.menu.SearchInRestaurant(r1.ID, "pizza")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Margherita Pizza" {
		t.Fatalf("results = %+v, want only Roma's pizza", items)
	}

	if _, err := env.menu.SearchInRestaurant(r1.ID, " "); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank query err = %v, want ErrMissingFields", err)
	}
	if _, err := env.menu.SearchInRestaurant(9999, "pizza"); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("unknown restaurant err = %v, want ErrRestaurantNotFound", err)
	}
}

func TestListByRestaurantRequiresApproved(t *testing.T) {
	env := newTestEnv(t)
	r := env.approvedRestaurant(t, "Roma", "m5@example.com")
	env.menuItem(t, r.ID, "Margherita", 120)
	if err := env.db.Model(r).Update("status", "pending").Error; err != nil {
		t.Fatalf("demote: %v", err)
	}

	if _, err := env.menu.ListByRestaurant(r.ID); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantNotFound", err)
	}

	// the owner still sees their menu while unapproved
	items, err := env.menu.ListOwn(r.ID)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
}
