package product

import (
	"strings"
	"time"

	"seafresh-be/internal/seller"
)

type Category string

const (
	CategoryFish    Category = "FISH"
	CategoryPrawn   Category = "PRAWN"
	CategoryCrab    Category = "CRAB"
	CategoryLobster Category = "LOBSTER"
	CategorySquid   Category = "SQUID"
	CategoryCombo   Category = "COMBO"
)

var orderedCategories = []Category{
	CategoryFish, CategoryPrawn, CategoryCrab, CategoryLobster, CategorySquid, CategoryCombo,
}

var categories = map[Category]bool{
	CategoryFish: true, CategoryPrawn: true, CategoryCrab: true,
	CategoryLobster: true, CategorySquid: true, CategoryCombo: true,
}

// Categories lists every category in storefront order.
func Categories() []Category {
	return append([]Category(nil), orderedCategories...)
}

// ParseCategory accepts any casing of a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	return c, categories[c]
}

type Nutrition struct {
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
	Calories string `json:"calories"`
	Omega3   string `json:"omega3"`
}

type Product struct {
	ID          string       `json:"id"`
	SellerID    string       `json:"sellerId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Price       float64      `json:"price"`
	Weight      string       `json:"weight"`
	Cut         *string      `json:"cut,omitempty"`
	Image       string       `json:"image"`
	Images      []string     `json:"images"`
	Stock       int          `json:"stock"`
	Rating      float64      `json:"rating"`
	Discount    *float64     `json:"discount,omitempty"`
	Origin      *string      `json:"origin,omitempty"`
	IsFeatured  bool         `json:"isFeatured"`
	Nutrition   *Nutrition   `json:"nutrition,omitempty"`
	Seller      *seller.Info `json:"seller,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Filter narrows a catalog listing. Both fields may be combined.
type Filter struct {
	Category *Category
	Search   string
}

type CreateProductInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Weight      string     `json:"weight"`
	Cut         *string    `json:"cut"`
	Image       string     `json:"image"`
	Images      []string   `json:"images"`
	Stock       *int       `json:"stock"`
	Rating      *float64   `json:"rating"`
	Discount    *float64   `json:"discount"`
	Origin      *string    `json:"origin"`
	IsFeatured  bool       `json:"isFeatured"`
	Nutrition   *Nutrition `json:"nutrition"`
}
