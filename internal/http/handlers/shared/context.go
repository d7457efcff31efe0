package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID    = "user_id"
	CtxPartnerID = "partner_id"
)

// PartnerID returns the authenticated partner's id from the context.
func PartnerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxPartnerID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// ParamUint parses a positive integer path parameter.
func ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
