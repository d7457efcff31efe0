package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/yallaorder-next/internal/models"
)

const (
	partnerAuthStateTTL  = 5 * time.Minute
	pendingCountTTL      = 30 * time.Second
	partnerAuthKeyFormat = "auth:partner:%d"
	pendingCountFormat   = "restaurant:%d:pending_count"
)

// PartnerAuthState is the cached login state of an approved partner. It lets
// token checks skip a database round-trip and drops out quickly after a
// review decision changes the application status.
type PartnerAuthState struct {
	PartnerID uint   `json:"partner_id"`
	Status    string `json:"status"`
}

// BuildPartnerAuthState derives the cache entry from an application row.
func BuildPartnerAuthState(app *models.PartnerApplication) *PartnerAuthState {
	if app == nil {
		return nil
	}
	return &PartnerAuthState{
		PartnerID: app.ID,
		Status:    app.Status,
	}
}

// GetPartnerAuthState reads the cached partner auth state.
func GetPartnerAuthState(ctx context.Context, partnerID uint) (*PartnerAuthState, bool, error) {
	if partnerID == 0 {
		return nil, false, nil
	}
	var state PartnerAuthState
	hit, err := GetJSON(ctx, fmt.Sprintf(partnerAuthKeyFormat, partnerID), &state)
	if err != nil || !hit {
		return nil, false, err
	}
	return &state, true, nil
}

// SetPartnerAuthState writes the cached partner auth state.
func SetPartnerAuthState(ctx context.Context, state *PartnerAuthState) error {
	if state == nil || state.PartnerID == 0 {
		return nil
	}
	return SetJSON(ctx, fmt.Sprintf(partnerAuthKeyFormat, state.PartnerID), state, partnerAuthStateTTL)
}

// DelPartnerAuthState drops the cached partner auth state, forcing the next
// token check back to the database. Called on review decisions.
func DelPartnerAuthState(ctx context.Context, partnerID uint) error {
	if partnerID == 0 {
		return nil
	}
	return Del(ctx, fmt.Sprintf(partnerAuthKeyFormat, partnerID))
}

// GetPendingOrderCount reads the cached pending sub-order count.
func GetPendingOrderCount(ctx context.Context, restaurantID uint) (int64, bool, error) {
	if restaurantID == 0 {
		return 0, false, nil
	}
	var count int64
	hit, err := GetJSON(ctx, fmt.Sprintf(pendingCountFormat, restaurantID), &count)
	if err != nil || !hit {
		return 0, false, err
	}
	return count, true, nil
}

// SetPendingOrderCount caches the pending sub-order count with a short TTL.
func SetPendingOrderCount(ctx context.Context, restaurantID uint, count int64) error {
	if restaurantID == 0 {
		return nil
	}
	return SetJSON(ctx, fmt.Sprintf(pendingCountFormat, restaurantID), count, pendingCountTTL)
}

// DelPendingOrderCount invalidates the cached pending count after a status
// change or new sub-order.
func DelPendingOrderCount(ctx context.Context, restaurantID uint) error {
	if restaurantID == 0 {
		return nil
	}
	return Del(ctx, fmt.Sprintf(pendingCountFormat, restaurantID))
}
