package seller

import "errors"

var (
	ErrMissingFields      = errors.New("email, username, company name and password are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSellerNotFound     = errors.New("seller not found")
)
