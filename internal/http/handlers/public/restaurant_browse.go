package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListRestaurants handles GET /restaurants.
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.RestaurantSvc.List()
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, restaurants)
}

// SearchRestaurants handles GET /restaurants/search.
func (h *Handler) SearchRestaurants(c *gin.Context) {
	restaurants, err := h.RestaurantSvc.Search(c.Query("q"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, restaurants)
}

// GetRestaurant handles GET /restaurants/:id.
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid restaurant id")
		return
	}
	restaurant, err := h.RestaurantSvc.Get(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, restaurant)
}

// RestaurantMenu handles GET /restaurants/:id/menu.
func (h *Handler) RestaurantMenu(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.MenuSvc.ListByRestaurant(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, items)
}
