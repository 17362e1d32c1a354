package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddTwiceIncrements(t *testing.T) {
	c := New()
	c.Add("p-1", 1, "500g")
	c.Add("p-2", 1, "1kg")
	c.Add("p-1", 2, "500g")

	assert.Equal(t, []Item{
		{ProductID: "p-1", Quantity: 3, Weight: "500g"},
		{ProductID: "p-2", Quantity: 1, Weight: "1kg"},
	}, c.Items)
}

func TestCart_ZeroQuantityEmptiesCart(t *testing.T) {
	for _, qty := range []int{0, -1, -10} {
		c := New()
		c.Add("p-1", 2, "")
		c.Add("p-2", 1, "")

		c.UpdateQuantity("p-1", qty)
		c.UpdateQuantity("p-2", qty)

		assert.True(t, c.IsEmpty(), "qty %d", qty)
	}
}

func TestCart_RemoveAllEmptiesCart(t *testing.T) {
	c := New()
	c.Add("p-1", 2, "")
	c.Add("p-2", 1, "")

	c.Remove("p-1")
	c.Remove("p-2")
	assert.True(t, c.IsEmpty())

	c.Add("p-3", 1, "")
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCart_NoNonPositiveEntries(t *testing.T) {
	c := New()
	c.Add("p-1", 0, "")
	c.Add("p-2", -3, "")
	assert.True(t, c.IsEmpty())

	c.Add("p-1", 2, "")
	c.UpdateQuantity("p-1", 5)
	c.UpdateQuantity("missing", 5)
	assert.Equal(t, []Item{{ProductID: "p-1", Quantity: 5}}, c.Items)
}

func TestProductIDs(t *testing.T) {
	ids := ProductIDs([]Item{{ProductID: "b"}, {ProductID: "a"}, {ProductID: "b"}, {ProductID: ""}})
	assert.Equal(t, []string{"b", "a"}, ids)
}
