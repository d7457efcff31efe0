package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// sessionID pulls the cart session token from query or JSON body fields.
func sessionID(c *gin.Context, bodyValue string) string {
	if bodyValue != "" {
		return bodyValue
	}
	return c.Query("session_id")
}

type addCartItemRequest struct {
	SessionID  string `json:"session_id"`
	MenuItemID uint   `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// AddCartItem handles POST /cart/add.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	item, err := h.CartSvc.AddItem(sessionID(c, req.SessionID), req.MenuItemID, req.Quantity)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "item added to cart", item)
}

// GetCart handles GET /cart.
func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.CartSvc.GetCart(c.Query("session_id"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, view)
}

// CartSummary handles GET /cart/summary.
func (h *Handler) CartSummary(c *gin.Context) {
	summary, err := h.CartSvc.Summary(c.Query("session_id"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}

type updateCartItemRequest struct {
	SessionID string `json:"session_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItem handles PUT /cart/item/:id.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid cart item id")
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.CartSvc.UpdateQuantity(sessionID(c, req.SessionID), id, req.Quantity); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "cart item updated", nil)
}

// RemoveCartItem handles DELETE /cart/item/:id.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.CartSvc.RemoveItem(c.Query("session_id"), id); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "cart item removed", nil)
}

// ClearCart handles DELETE /cart/clear.
func (h *Handler) ClearCart(c *gin.Context) {
	removed, err := h.CartSvc.ClearCart(c.Query("session_id"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "cart cleared", gin.H{"removed": removed})
}

// CartCount handles GET /cart/count.
func (h *Handler) CartCount(c *gin.Context) {
	count, err := h.CartSvc.CountItems(c.Query("session_id"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"count": count})
}
