package category

import "seafresh-be/internal/product"

// Summary is the storefront view of one product category.
type Summary struct {
	Category     product.Category `json:"category"`
	ProductCount int              `json:"productCount"`
	InStock      int              `json:"inStock"`
	MinPrice     *float64         `json:"minPrice"`
}
