package cart

import "context"

// Store persists one cart per customer. Load returns an empty cart when none is stored.
//
// Update applies fn to the stored cart and writes the result back atomically;
// concurrent updates for the same customer never overwrite each other. When fn
// returns an error nothing is written.
type Store interface {
	Load(ctx context.Context, customerID string) (*Cart, error)
	Update(ctx context.Context, customerID string, fn func(*Cart) error) (*Cart, error)
	Delete(ctx context.Context, customerID string) error
}
