package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

type createGroupOrderRequest struct {
	UserID           *uint                      `json:"user_id"`
	CustomerName     string                     `json:"customer_name"`
	Phone            string                     `json:"phone"`
	TempPhone        string                     `json:"temp_phone"`
	DeliveryLocation string                     `json:"delivery_location"`
	NumPeople        int                        `json:"num_people"`
	Members          []service.GroupMemberInput `json:"members"`
}

// CreateGroupOrder handles POST /group_orders.
func (h *Handler) CreateGroupOrder(c *gin.Context) {
	var req createGroupOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.GroupOrderSvc.Create(service.CreateGroupOrderInput{
		UserID:           req.UserID,
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		TempPhone:        req.TempPhone,
		DeliveryLocation: req.DeliveryLocation,
		NumPeople:        req.NumPeople,
		Members:          req.Members,
	})
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "group order placed", order)
}

// ConfirmGroupOrder handles POST /group_orders/:order_id/confirm.
func (h *Handler) ConfirmGroupOrder(c *gin.Context) {
	orderID, ok := shared.ParamUint(c, "order_id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	results, err := h.GroupOrderSvc.Confirm(orderID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	for _, r := range results {
		if r.Created {
			response.Created(c, "group order confirmed", results)
			return
		}
	}
	response.OKMessage(c, "group order already confirmed", results)
}

// GetGroupOrder handles GET /group_orders/:order_id/summary.
func (h *Handler) GetGroupOrder(c *gin.Context) {
	orderID, ok := shared.ParamUint(c, "order_id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	view, err := h.GroupOrderSvc.GetByOrderID(orderID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, view)
}
