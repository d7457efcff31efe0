package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMenuItem handles GET /menu/item/:id.
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := h.MenuSvc.GetItem(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, item)
}

// SearchMenu handles GET /menu/search.
func (h *Handler) SearchMenu(c *gin.Context) {
	items, err := h.MenuSvc.Search(c.Query("q"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, items)
}

// BrowseRestaurantMenu handles GET /restaurant-menu/:restaurant_id.
func (h *Handler) BrowseRestaurantMenu(c *gin.Context) {
	restaurantID, ok := shared.ParamUint(c, "restaurant_id")
	if !ok {
		response.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.MenuSvc.ListByRestaurant(restaurantID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, items)
}

// SearchRestaurantMenu handles GET /restaurant-menu/:restaurant_id/search.
func (h *Handler) SearchRestaurantMenu(c *gin.Context) {
	restaurantID, ok := shared.ParamUint(c, "restaurant_id")
	if !ok {
		response.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.MenuSvc.SearchInRestaurant(restaurantID, c.Query("q"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, items)
}
