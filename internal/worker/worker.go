package worker

import (
	"context"
	"encoding/json"

	"github.com/yallaorder-next/internal/cache"
	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/provider"
	"github.com/yallaorder-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer processes background tasks off the queue.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the task consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register attaches the task handlers to the mux.
func (w *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskRestaurantOrderNotify, w.HandleOrderNotify)
	mux.HandleFunc(constants.TaskRestaurantStatusAudit, w.HandleStatusAudit)
}

// HandleOrderNotify reacts to a new sub-order landing at a restaurant. It
// drops the restaurant's cached pending count so the next dashboard poll
// sees the new order, and records the notification.
func (w *Consumer) HandleOrderNotify(ctx context.Context, t *asynq.Task) error {
	var payload queue.RestaurantOrderNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Errorw("order_notify_payload_invalid", "error", err)
		return nil // malformed payloads are not retryable
	}

	sub, err := w.Orders.GetRestaurantOrderByID(payload.RestaurantOrderID)
	if err != nil {
		return err
	}
	if sub == nil {
		logger.Warnw("order_notify_suborder_missing",
			"restaurant_order_id", payload.RestaurantOrderID,
		)
		return nil
	}

	if err := cache.DelPendingOrderCount(ctx, payload.RestaurantID); err != nil {
		logger.Warnw("pending_count_invalidate_failed",
			"restaurant_id", payload.RestaurantID,
			"error", err,
		)
	}

	logger.Infow("restaurant_order_notified",
		"restaurant_order_id", sub.ID,
		"order_id", payload.OrderID,
		"restaurant_id", payload.RestaurantID,
	)
	return nil
}

// HandleStatusAudit records a fulfillment status transition.
func (w *Consumer) HandleStatusAudit(ctx context.Context, t *asynq.Task) error {
	var payload queue.RestaurantStatusAuditPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Errorw("status_audit_payload_invalid", "error", err)
		return nil
	}

	logger.Infow("restaurant_order_status_audited",
		"restaurant_order_id", payload.RestaurantOrderID,
		"restaurant_id", payload.RestaurantID,
		"from", payload.FromStatus,
		"to", payload.ToStatus,
	)
	return nil
}
