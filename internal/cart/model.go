package cart

// Item is one cart entry. A cart never holds two items for the same product.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Weight    string `json:"weight"`
}

// Cart is an ordered list of items. Mutations keep it free of duplicate
// products and of zero or negative quantities.
type Cart struct {
	Items []Item `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add increments an existing entry or appends a new one.
func (c *Cart) Add(productID string, qty int, weight string) {
	if qty <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, Item{ProductID: productID, Quantity: qty, Weight: weight})
}

func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets the quantity; qty <= 0 removes the entry.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Has(productID string) bool {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// ProductIDs returns the distinct product ids in cart order.
func ProductIDs(items []Item) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		ids = append(ids, it.ProductID)
	}
	return ids
}
