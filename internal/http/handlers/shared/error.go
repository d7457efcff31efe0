package shared

import (
	"errors"

	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
)

// HandleServiceError maps service sentinel errors onto HTTP responses.
// Anything unmapped is logged and answered with a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidNumPeople),
		errors.Is(err, service.ErrMemberItemMismatch):
		response.BadRequest(c, err.Error())

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrRestaurantOrderNotFound),
		errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrApplicationNotFound),
		errors.Is(err, service.ErrGroupOrderNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, service.ErrPhoneTaken),
		errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())

	default:
		logger.Errorw("unhandled_service_error",
			"path", c.FullPath(),
			"error", err,
		)
		response.InternalError(c)
	}
}
