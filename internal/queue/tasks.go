package queue

import (
	"encoding/json"

	"github.com/yallaorder-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRestaurantOrderNotify flags a new sub-order for a restaurant.
	TaskRestaurantOrderNotify = constants.TaskRestaurantOrderNotify
	// TaskRestaurantStatusAudit records a sub-order status change.
	TaskRestaurantStatusAudit = constants.TaskRestaurantStatusAudit
)

// RestaurantOrderNotifyPayload carries a newly created sub-order.
type RestaurantOrderNotifyPayload struct {
	RestaurantOrderID uint `json:"restaurant_order_id"`
	OrderID           uint `json:"order_id"`
	RestaurantID      uint `json:"restaurant_id"`
}

// RestaurantStatusAuditPayload carries a sub-order status transition.
type RestaurantStatusAuditPayload struct {
	RestaurantOrderID uint   `json:"restaurant_order_id"`
	RestaurantID      uint   `json:"restaurant_id"`
	FromStatus        string `json:"from_status"`
	ToStatus          string `json:"to_status"`
}

// NewRestaurantOrderNotifyTask builds the notify task.
func NewRestaurantOrderNotifyTask(payload RestaurantOrderNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRestaurantOrderNotify, body), nil
}

// NewRestaurantStatusAuditTask builds the status audit task.
func NewRestaurantStatusAuditTask(payload RestaurantStatusAuditPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRestaurantStatusAudit, body), nil
}
