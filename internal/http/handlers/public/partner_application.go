package public

import (
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Apply handles POST /partners/apply.
func (h *Handler) Apply(c *gin.Context) {
	var req service.ApplyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	app, err := h.PartnerSvc.Apply(req)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, "application submitted", gin.H{
		"application_id": app.ID,
		"status":         app.Status,
	})
}

// CheckApplicationStatus handles GET /partners/check-status.
func (h *Handler) CheckApplicationStatus(c *gin.Context) {
	status, err := h.PartnerSvc.CheckStatus(c.Query("email"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, status)
}

// ListApplications handles GET /partners/applications.
func (h *Handler) ListApplications(c *gin.Context) {
	apps, err := h.PartnerSvc.List(c.Query("status"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, apps)
}

type reviewApplicationRequest struct {
	Status string `json:"status"`
}

// ReviewApplication handles PUT /partners/applications/:id/review.
func (h *Handler) ReviewApplication(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}
	var req reviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	app, err := h.PartnerSvc.Review(id, req.Status)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "application reviewed", app)
}

// ApplicationStatistics handles GET /partners/statistics.
func (h *Handler) ApplicationStatistics(c *gin.Context) {
	stats, err := h.PartnerSvc.Statistics()
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OK(c, stats)
}

type partnerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PartnerLogin handles POST /partners/login.
func (h *Handler) PartnerLogin(c *gin.Context) {
	var req partnerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	result, err := h.PartnerSvc.Login(req.Email, req.Password)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.OKMessage(c, "login successful", result)
}
