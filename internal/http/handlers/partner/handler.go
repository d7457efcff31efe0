package partner

import (
	"github.com/yallaorder-next/internal/provider"
)

// Handler serves the endpoints behind partner authentication.
type Handler struct {
	*provider.Container
}

// New creates the partner handler set.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
