package provider

import (
	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/queue"
	"github.com/yallaorder-next/internal/repository"
	"github.com/yallaorder-next/internal/service"
)

// Container wires repositories and services once at startup and hands the
// set to handlers and workers.
type Container struct {
	Cfg *config.Config

	Queue *queue.Client

	Users    repository.UserRepository
	Partners repository.PartnerRepository
	Menu     repository.MenuItemRepository
	Carts    repository.CartRepository
	Orders   repository.OrderRepository
	Groups   repository.GroupOrderRepository

	UserAuth       *service.UserAuthService
	PartnerSvc     *service.PartnerService
	RestaurantSvc  *service.RestaurantService
	MenuSvc        *service.MenuService
	CartSvc        *service.CartService
	OrderSvc       *service.OrderService
	GroupOrderSvc  *service.GroupOrderService
}

// NewContainer builds the dependency container on top of the global DB
// handle and an initialized queue client.
func NewContainer(cfg *config.Config, queueClient *queue.Client) *Container {
	users := repository.NewUserRepository(models.DB)
	partners := repository.NewPartnerRepository(models.DB)
	menu := repository.NewMenuItemRepository(models.DB)
	carts := repository.NewCartRepository(models.DB)
	orders := repository.NewOrderRepository(models.DB)
	groups := repository.NewGroupOrderRepository(models.DB)

	orderSvc := service.NewOrderService(orders, carts, menu, queueClient, cfg.Order)

	return &Container{
		Cfg:   cfg,
		Queue: queueClient,

		Users:    users,
		Partners: partners,
		Menu:     menu,
		Carts:    carts,
		Orders:   orders,
		Groups:   groups,

		UserAuth:      service.NewUserAuthService(users, cfg.UserJWT),
		PartnerSvc:    service.NewPartnerService(partners, cfg.PartnerJWT, cfg.Partner),
		RestaurantSvc: service.NewRestaurantService(partners),
		MenuSvc:       service.NewMenuService(menu, partners),
		CartSvc:       service.NewCartService(carts, menu, cfg.Order),
		OrderSvc:      orderSvc,
		GroupOrderSvc: service.NewGroupOrderService(groups, orderSvc),
	}
}
