package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these onto
// HTTP status codes.
var (
	// Validation failures (HTTP 400).
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInvalidPrice       = errors.New("price must be a positive number")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidNumPeople   = errors.New("number of people must be at least 1")
	ErrMemberItemMismatch = errors.New("items must be provided for each member")

	// Missing records (HTTP 404).
	ErrUserNotFound            = errors.New("user not found")
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrCartNotFound            = errors.New("cart not found")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrRestaurantOrderNotFound = errors.New("restaurant order not found")
	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrGroupOrderNotFound      = errors.New("group order not found")

	// Conflicts with existing state (HTTP 409).
	ErrPhoneTaken = errors.New("phone number already registered")
	ErrEmailTaken = errors.New("email already used by another application")

	// Credential failures (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")
)
