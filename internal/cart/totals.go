package cart

import (
	"strings"

	"seafresh-be/internal/product"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Pricing holds the shop-wide pricing knobs.
type Pricing struct {
	TaxRate       float64
	CouponCode    string
	CouponPercent float64
}

func DefaultPricing() Pricing {
	return Pricing{TaxRate: 0.05, CouponCode: "SEAFRESH10", CouponPercent: 10}
}

// Line is a priced cart item resolved against the live catalog.
type Line struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SellerID    string  `json:"sellerId,omitempty"`
	Image       string  `json:"image"`
	Weight      string  `json:"weight"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type Totals struct {
	Lines         []Line  `json:"lines"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	CouponApplied bool    `json:"couponApplied"`
}

// UnitPrice applies a product's percentage discount, rounded to whole currency units.
func UnitPrice(p *product.Product) decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	if p.Discount == nil || *p.Discount <= 0 {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(*p.Discount).Div(hundred))
	return price.Mul(factor).Round(0)
}

// ComputeTotals prices items against catalog. Items whose product is not in
// catalog are dropped without error.
func ComputeTotals(items []Item, catalog []*product.Product, pricing Pricing, couponCode string) Totals {
	byID := make(map[string]*product.Product, len(catalog))
	for _, p := range catalog {
		if p != nil {
			byID[p.ID] = p
		}
	}

	lines := make([]Line, 0, len(items))
	subtotal := decimal.Zero

	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok || it.Quantity <= 0 {
			continue
		}

		unit := UnitPrice(p)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		weight := it.Weight
		if weight == "" {
			weight = p.Weight
		}

		lines = append(lines, Line{
			ProductID:   p.ID,
			ProductName: p.Name,
			SellerID:    p.SellerID,
			Image:       p.Image,
			Weight:      weight,
			Quantity:    it.Quantity,
			UnitPrice:   unit.InexactFloat64(),
			LineTotal:   lineTotal.InexactFloat64(),
		})
	}

	tax := subtotal.Mul(decimal.NewFromFloat(pricing.TaxRate)).Round(2)

	discount := decimal.Zero
	applied := couponMatches(pricing.CouponCode, couponCode)
	if applied {
		discount = subtotal.Mul(decimal.NewFromFloat(pricing.CouponPercent)).Div(hundred).Round(0)
	}

	return Totals{
		Lines:         lines,
		Subtotal:      subtotal.InexactFloat64(),
		Tax:           tax.InexactFloat64(),
		Discount:      discount.InexactFloat64(),
		Total:         subtotal.Add(tax).Sub(discount).InexactFloat64(),
		CouponApplied: applied,
	}
}

func couponMatches(configured, supplied string) bool {
	configured = strings.TrimSpace(configured)
	return configured != "" && strings.EqualFold(configured, strings.TrimSpace(supplied))
}
