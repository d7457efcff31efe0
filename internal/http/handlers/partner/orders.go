package partner

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListOrders handles GET /partners/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	orders, err := h.OrderSvc.ListRestaurantOrders(partnerID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, orders)
}

// PendingCount handles GET /partners/orders/pending-count.
func (h *Handler) PendingCount(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	count, err := h.OrderSvc.PendingCount(c.Request.Context(), partnerID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"pending": count})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PUT /partners/orders/:id/status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid restaurant order id")
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	sub, err := h.OrderSvc.UpdateRestaurantStatus(id, partnerID, req.Status)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "status updated", sub)
}
