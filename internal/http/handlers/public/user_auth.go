package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Register handles POST /users/register.
func (h *Handler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	user, err := h.UserAuth.Register(req)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "account created", user)
}

type userLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login handles POST /users/login.
func (h *Handler) Login(c *gin.Context) {
	var req userLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	result, err := h.UserAuth.Login(req.Phone, req.Password)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "login successful", result)
}

// Me handles GET /users/me.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	user, err := h.UserAuth.GetUser(userID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, user)
}

// UserOrders handles GET /users/:id/orders.
func (h *Handler) UserOrders(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}
	if _, err := h.UserAuth.GetUser(id); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	orders, err := h.OrderSvc.ListUserOrders(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, orders)
}
