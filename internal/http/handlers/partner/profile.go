package partner

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Me handles GET /partners/me.
func (h *Handler) Me(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	profile, err := h.PartnerSvc.Profile(partnerID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, profile)
}

// UpdateMe handles PUT /partners/me.
func (h *Handler) UpdateMe(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req service.UpdateInfoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	profile, err := h.PartnerSvc.UpdateInfo(partnerID, req)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "profile updated", profile)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PUT /partners/me/password.
func (h *Handler) ChangePassword(c *gin.Context) {
	partnerID, ok := shared.PartnerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.PartnerSvc.ChangePassword(partnerID, req.CurrentPassword, req.NewPassword); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "password changed", nil)
}
