package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	SessionID        string `json:"session_id"`
	UserID           *uint  `json:"user_id"`
	CustomerName     string `json:"customer_name"`
	Phone            string `json:"phone"`
	TempPhone        string `json:"temp_phone"`
	DeliveryLocation string `json:"delivery_location"`
}

// Checkout handles POST /orders/checkout.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderSvc.Checkout(service.CheckoutInput{
		SessionID:        sessionID(c, req.SessionID),
		UserID:           req.UserID,
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		TempPhone:        req.TempPhone,
		DeliveryLocation: req.DeliveryLocation,
	})
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "order placed", order)
}

type placeOrderRequest struct {
	UserID           *uint                    `json:"user_id"`
	CustomerName     string                   `json:"customer_name"`
	Phone            string                   `json:"phone"`
	TempPhone        string                   `json:"temp_phone"`
	DeliveryLocation string                   `json:"delivery_location"`
	Items            []service.OrderLineInput `json:"items"`
}

// PlaceOrder handles POST /orders.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderSvc.PlaceOrder(service.PlaceOrderInput{
		UserID:           req.UserID,
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		TempPhone:        req.TempPhone,
		DeliveryLocation: req.DeliveryLocation,
		Lines:            req.Items,
	})
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "order placed", order)
}

// GetOrder handles GET /orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	view, err := h.OrderSvc.GetOrder(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, view)
}

// TrackOrders handles GET /orders/track.
func (h *Handler) TrackOrders(c *gin.Context) {
	views, err := h.OrderSvc.TrackByPhone(c.Query("phone"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, views)
}

// OrderSummary handles GET /orders/:id/summary.
func (h *Handler) OrderSummary(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	summary, err := h.OrderSvc.OrderSummary(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}

// ConfirmOrder handles POST /orders/:id/confirm.
func (h *Handler) ConfirmOrder(c *gin.Context) {
	orderID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	results, err := h.OrderSvc.ConfirmOrder(orderID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	for _, r := range results {
		if r.Created {
			response.Created(c, "order confirmed", results)
			return
		}
	}
	response.OKMessage(c, "order already confirmed", results)
}
