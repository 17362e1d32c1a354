package order

import (
	"strings"
	"time"

	"seafresh-be/internal/address"
	"seafresh-be/internal/cart"
	"seafresh-be/internal/payment"
	"seafresh-be/internal/seller"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return st, true
	}
	return "", false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItemVersion is written into every line item snapshot.
const LineItemVersion = 1

// LineItem is the product snapshot taken when the order is placed.
// It is never re-joined to the live catalog.
type LineItem struct {
	Version     int     `json:"version"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SellerID    *string `json:"sellerId,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Weight      string  `json:"weight"`
	Image       string  `json:"image"`
}

type Customer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type Order struct {
	ID            string           `json:"id"`
	OrderNumber   string           `json:"orderNumber"`
	UserID        string           `json:"userId"`
	AddressID     string           `json:"addressId"`
	Items         []LineItem       `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	Tax           float64          `json:"tax"`
	Discount      float64          `json:"discount"`
	TotalAmount   float64          `json:"totalAmount"`
	PaymentMethod payment.Method   `json:"paymentMethod"`
	PaymentStatus payment.Status   `json:"paymentStatus"`
	OrderStatus   Status           `json:"orderStatus"`
	Customer      *Customer        `json:"customer,omitempty"`
	Address       *address.Address `json:"address,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// SellerIDs returns the distinct non-empty seller ids across the order's items.
func (o *Order) SellerIDs() []string {
	return distinctSellerIDs([]*Order{o})
}

func (o *Order) hasSeller(sellerID string) bool {
	for _, it := range o.Items {
		if it.SellerID != nil && *it.SellerID == sellerID {
			return true
		}
	}
	return false
}

// AttributedItem is a line item with the resolved seller; SellerInfo is nil when unresolved.
type AttributedItem struct {
	LineItem
	SellerInfo *seller.Info `json:"sellerInfo"`
}

type AttributedOrder struct {
	*Order
	Items []AttributedItem `json:"items"`
}

type PlaceInput struct {
	AddressID     string      `json:"addressId"`
	Items         []cart.Item `json:"items"`
	PaymentMethod string      `json:"paymentMethod"`
	CouponCode    string      `json:"couponCode"`
}

type PlaceResult struct {
	Order        *AttributedOrder `json:"order"`
	Instructions []string         `json:"paymentInstructions"`
}
