package grocery

import "errors"

// Domain errors for grocery list operations

var (
	// Entity validation errors
	ErrEmptyName        = errors.New("grocery item name cannot be empty")
	ErrNegativeQuantity = errors.New("grocery item quantity cannot be negative")
	ErrUnknownCategory  = errors.New("unknown grocery category")

	// Lookup errors
	ErrItemNotFound = errors.New("grocery item not found")
)
