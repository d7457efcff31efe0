package service

import (
	"testing"
	"time"

	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/queue"
	"github.com/yallaorder-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	cart        *CartService
	orders      *OrderService
	groups      *GroupOrderService
	partners    *PartnerService
	users       *UserAuthService
	menu        *MenuService
	restaurants *RestaurantService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.PartnerApplication{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.RestaurantOrder{},
		&models.GroupOrder{},
		&models.GroupMember{},
		&models.GroupOrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client: %v", err)
	}

	orderCfg := config.OrderConfig{
		TaxRate:             0.14,
		CartDeliveryFee:     25.0,
		CheckoutDeliveryFee: 20.0,
		ValidStatuses:       constants.DefaultRestaurantOrderStatuses(),
	}
	userJWT := config.JWTConfig{SecretKey: "test-user-secret", ExpireHours: 1}
	partnerJWT := config.JWTConfig{SecretKey: "test-partner-secret", ExpireHours: 1}

	userRepo := repository.NewUserRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	groupRepo := repository.NewGroupOrderRepository(db)

	orderSvc := NewOrderService(orderRepo, cartRepo, menuRepo, queueClient, orderCfg)

	return &testEnv{
		db:          db,
		cart:        NewCartService(cartRepo, menuRepo, orderCfg),
		orders:      orderSvc,
		groups:      NewGroupOrderService(groupRepo, orderSvc),
		partners:    NewPartnerService(partnerRepo, partnerJWT, config.PartnerConfig{TempPasswordLength: 8}),
		users:       NewUserAuthService(userRepo, userJWT),
		menu:        NewMenuService(menuRepo, partnerRepo),
		restaurants: NewRestaurantService(partnerRepo),
	}
}

func (e *testEnv) approvedRestaurant(t *testing.T, name, email string) *models.PartnerApplication {
	t.Helper()
	now := time.Now()
	app := &models.PartnerApplication{
		ManagerName:     "Manager",
		ManagerPhone:    "0100",
		RestaurantName:  name,
		RestaurantPhone: "0200",
		RestaurantEmail: email,
		Address:         "Somewhere",
		Hotline:         constants.DefaultHotline,
		HasLicense:      true,
		Status:          constants.ApplicationStatusApproved,
		TempPassword:    "secret12",
		AppliedAt:       now,
		ReviewedAt:      &now,
	}
	if err := e.db.Create(app).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return app
}

func (e *testEnv) menuItem(t *testing.T, restaurantID uint, name string, price int64) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
	}
	if err := e.db.Create(item).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item
}

func assertMoney(t *testing.T, got models.Money, want int64, label string) {
	t.Helper()
	if !got.Decimal.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s = %s, want %d", label, got.String(), want)
	}
}
