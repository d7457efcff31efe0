package constants

// Restaurant sub-order statuses
const (
	RestaurantOrderStatusPending   = "pending"
	RestaurantOrderStatusPreparing = "preparing"
	RestaurantOrderStatusOnTheWay  = "on_the_way"
	RestaurantOrderStatusDelivered = "delivered"
	RestaurantOrderStatusCancelled = "cancelled"
)

// Order types
const (
	OrderTypeIndividual = "individual"
	OrderTypeGroup      = "group"
)

// Partner application statuses
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Queue names
const (
	QueueDefault = "default"
)

// Task names
const (
	TaskRestaurantOrderNotify = "restaurant:order_notify"
	TaskRestaurantStatusAudit = "restaurant:status_audit"
)

// DefaultCustomerName is used when checkout omits a customer name.
const DefaultCustomerName = "Customer"

// DefaultGroupCustomerName is used when a group order omits a customer name.
const DefaultGroupCustomerName = "Group Order"

// DefaultHotline is stored when an application omits a hotline number.
const DefaultHotline = "N/A"

// DefaultRestaurantOrderStatuses is the status set used when none is configured.
func DefaultRestaurantOrderStatuses() []string {
	return []string{
		RestaurantOrderStatusPending,
		RestaurantOrderStatusPreparing,
		RestaurantOrderStatusOnTheWay,
		RestaurantOrderStatusDelivered,
		RestaurantOrderStatusCancelled,
	}
}

// DefaultApplicationStatuses is the partner application status set.
func DefaultApplicationStatuses() []string {
	return []string{
		ApplicationStatusPending,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
	}
}
