package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	partnerhandlers "github.com/yallaorder-next/internal/http/handlers/partner"
	"github.com/yallaorder-next/internal/http/handlers/public"
	"github.com/yallaorder-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// New builds the HTTP engine with all routes and middleware attached.
func New(container *provider.Container) *gin.Engine {
	if container.Cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(LoggerMiddleware())
	engine.Use(CORSMiddleware(container.Cfg.CORS))

	pub := public.New(container)
	ptr := partnerhandlers.New(container)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/api", apiManifest)

	users := engine.Group("/users")
	{
		users.POST("/register", pub.Register)
		users.POST("/login", pub.Login)
		users.GET("/me", UserAuthMiddleware(container), pub.Me)
		users.GET("/:id/orders", pub.UserOrders)
	}

	restaurants := engine.Group("/restaurants")
	{
		restaurants.GET("", pub.ListRestaurants)
		restaurants.GET("/search", pub.SearchRestaurants)
		restaurants.GET("/:id", pub.GetRestaurant)
		restaurants.GET("/:id/menu", pub.RestaurantMenu)
	}

	menu := engine.Group("/menu")
	{
		menu.GET("/item/:id", pub.GetMenuItem)
		menu.GET("/search", pub.SearchMenu)

		manage := menu.Group("", PartnerAuthMiddleware(container))
		{
			manage.GET("", ptr.ListMenu)
			manage.POST("", ptr.CreateMenuItem)
			manage.PUT("/:id", ptr.UpdateMenuItem)
			manage.DELETE("/:id", ptr.DeleteMenuItem)
		}
	}

	cart := engine.Group("/cart")
	{
		cart.POST("/add", pub.AddCartItem)
		cart.GET("", pub.GetCart)
		cart.GET("/summary", pub.CartSummary)
		cart.PUT("/item/:id", pub.UpdateCartItem)
		cart.DELETE("/item/:id", pub.RemoveCartItem)
		cart.DELETE("/clear", pub.ClearCart)
		cart.GET("/count", pub.CartCount)
	}

	orders := engine.Group("/orders")
	{
		orders.POST("/checkout", pub.Checkout)
		orders.POST("", pub.PlaceOrder)
		orders.GET("/track", pub.TrackOrders)
		orders.GET("/:id", pub.GetOrder)
		orders.GET("/:id/summary", pub.OrderSummary)
		orders.POST("/:id/confirm", pub.ConfirmOrder)
	}

	groupOrders := engine.Group("/group_orders")
	{
		groupOrders.POST("", pub.CreateGroupOrder)
		groupOrders.GET("/:order_id/summary", pub.GetGroupOrder)
		groupOrders.POST("/:order_id/confirm", pub.ConfirmGroupOrder)
	}

	partners := engine.Group("/partners")
	{
		partners.POST("/apply", pub.Apply)
		partners.GET("/check-status", pub.CheckApplicationStatus)
		partners.GET("/applications", pub.ListApplications)
		partners.PUT("/applications/:id/review", pub.ReviewApplication)
		partners.GET("/statistics", pub.ApplicationStatistics)
		partners.POST("/login", pub.PartnerLogin)

		authed := partners.Group("", PartnerAuthMiddleware(container))
		{
			authed.GET("/me", ptr.Me)
			authed.PUT("/me", ptr.UpdateMe)
			authed.PUT("/me/password", ptr.ChangePassword)
			authed.GET("/orders", ptr.ListOrders)
			authed.GET("/orders/pending-count", ptr.PendingCount)
			authed.PUT("/orders/:id/status", ptr.UpdateOrderStatus)
		}
	}

	restaurantMenu := engine.Group("/restaurant-menu")
	{
		restaurantMenu.GET("/:restaurant_id", pub.BrowseRestaurantMenu)
		restaurantMenu.GET("/:restaurant_id/search", pub.SearchRestaurantMenu)
	}

	mountFrontend(engine, container.Cfg.Frontend.Dir)

	return engine
}

// apiManifest lists the route groups for quick discovery during
// development.
func apiManifest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "yallaorder",
		"groups": []string{
			"/users", "/restaurants", "/menu", "/cart",
			"/orders", "/group_orders", "/partners", "/restaurant-menu",
		},
	})
}

// mountFrontend serves the static SPA when its directory exists. Unknown
// non-API paths fall back to index.html so client-side routing works.
func mountFrontend(engine *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	engine.Static("/static", filepath.Join(dir, "static"))
	engine.StaticFile("/", index)
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
			return
		}
		c.File(index)
	})
}
