package partner

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListMenu handles GET /restaurant-menu.
func (h *Handler) ListMenu(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	items, err := h.MenuSvc.ListOwn(partnerID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, items)
}

// CreateMenuItem handles POST /restaurant-menu.
func (h *Handler) CreateMenuItem(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req service.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	item, err := h.MenuSvc.CreateItem(partnerID, req)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "menu item created", item)
}

// UpdateMenuItem handles PUT /restaurant-menu/:id.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid menu item id")
		return
	}
	var req service.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	item, err := h.MenuSvc.UpdateItem(partnerID, id, req)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "menu item updated", item)
}

// DeleteMenuItem handles DELETE /restaurant-menu/:id.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid menu item id")
		return
	}
	if err := h.MenuSvc.DeleteItem(partnerID, id); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "menu item deleted", nil)
}
