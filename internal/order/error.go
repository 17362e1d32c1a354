package order

import "errors"

var (
	ErrMissingAddress       = errors.New("address id is required")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
	ErrStatusConflict       = errors.New("order status changed concurrently")
	ErrOrderNotFound        = errors.New("order not found")
	ErrForbidden            = errors.New("order belongs to another account")
	ErrUnsupportedLineItem  = errors.New("unsupported line item version")
)
