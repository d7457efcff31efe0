package public

import (
	"github.com/yallaorder-next/internal/provider"
)

// Handler serves the customer-facing endpoints.
type Handler struct {
	*provider.Container
}

// New creates the public handler set.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
