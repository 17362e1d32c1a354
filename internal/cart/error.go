package cart

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrMissingProductID = errors.New("product id is required")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartBusy         = errors.New("cart is being updated, retry")
)
