package address

import "errors"

var (
	ErrMissingFields   = errors.New("all address fields are required")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrAddressNotFound = errors.New("address not found")
	ErrForbidden       = errors.New("address belongs to another user")
)
