package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidTransition     = errors.New("status transition is not allowed")
	ErrInvalidState          = errors.New("operation requires another order state")
	ErrEmptyReason           = errors.New("reason must not be empty")
	ErrEmptyItems            = errors.New("order must contain at least one item")
	ErrInvalidItem           = errors.New("invalid order item")
	ErrInvalidAmount         = errors.New("monetary amount must not be negative")
	ErrTotalMismatch         = errors.New("total does not match subtotal - discount + shipping + tax")

	ErrOrderNotFound          = errors.New("order not found")
	ErrReturnNotFound         = errors.New("return request not found")
	ErrReturnAlreadyRequested = errors.New("order already has an open return request")
	ErrConflict               = errors.New("order already exists")
)
