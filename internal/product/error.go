package product

import "errors"

var (
	ErrMissingFields     = errors.New("name, description, category, price and weight are required")
	ErrInvalidCategory   = errors.New("invalid product category")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrInvalidStock      = errors.New("stock cannot be negative")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrInvalidDiscount   = errors.New("discount must be between 0 and 100")
	ErrInvalidDelta      = errors.New("stock delta must be non-zero")
	ErrProductNotFound   = errors.New("product not found")
	ErrForbidden         = errors.New("product belongs to another seller")
	ErrInsufficientStock = errors.New("insufficient stock")
)
