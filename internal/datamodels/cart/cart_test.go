package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price float64) Item {
	return Item{ID: id, Name: "item " + id, Price: price}
}

func TestAddNewAndExisting(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 10), 2)
	s.Add(item("p2", 5), 1)
	s.Add(item("p1", 10), 3)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestQuantityAlwaysClamped(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 10), 0)
	assert.Equal(t, 1, s.Items()[0].Quantity, "adds clamp up to 1")

	s.UpdateQuantity("p1", 500)
	assert.Equal(t, DefaultMaxQuantity, s.Items()[0].Quantity)

	s.UpdateQuantity("p1", -3)
	assert.Equal(t, 1, s.Items()[0].Quantity)

	s.Add(Item{ID: "p2", Price: 1, MaxQuantity: 5}, 10)
	assert.Equal(t, 5, s.Items()[1].Quantity, "per-item limit wins")

	for _, it := range s.Items() {
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, DefaultMaxQuantity)
	}
}

func TestUpdateAndRemoveUnknownAreNoOps(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 10), 1)
	s.UpdateQuantity("nope", 3)
	s.Remove("nope")
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestRemoveDeletesEntry(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 10), 1)
	s.Add(item("p2", 20), 1)
	s.Remove("p1")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	for _, it := range items {
		assert.NotZero(t, it.Quantity, "no zero-quantity rows may persist")
	}
}

func TestSubtotal(t *testing.T) {
	s := NewStore()
	assert.Zero(t, s.Subtotal(), "empty cart totals to 0")

	s.Add(item("p1", 89.99), 1)
	s.Add(item("p2", 129.99), 2)
	assert.InDelta(t, 89.99+2*129.99, s.Subtotal(), 1e-9)
}

func TestShippingBoundary(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 100.00), 1)
	assert.Equal(t, ShippingFee, s.Totals().Shipping, "subtotal exactly 100 still pays shipping")

	s.Add(item("p2", 0.01), 1)
	assert.Zero(t, s.Totals().Shipping, "strictly above 100 ships free")
}

func TestTotals(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 50), 1)

	tt := s.Totals()
	assert.Equal(t, 50.0, tt.Subtotal)
	assert.Equal(t, 9.99, tt.Shipping)
	assert.Equal(t, 5.0, tt.Tax)
	assert.Equal(t, 64.99, tt.Total)
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore()
	s.Add(item("p1", 10), 3)
	s.Clear()
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Subtotal())
}

func TestObserverSeesEveryMutation(t *testing.T) {
	s := NewStore()
	var calls int
	var lastTotals Totals
	unsub := s.Subscribe(func(items []Item, totals Totals) {
		calls++
		lastTotals = totals
	})

	s.Add(item("p1", 10), 2)
	s.UpdateQuantity("p1", 3)
	s.Remove("p1")
	assert.Equal(t, 3, calls)
	assert.Zero(t, lastTotals.Subtotal)

	unsub()
	s.Add(item("p2", 5), 1)
	assert.Equal(t, 3, calls, "unsubscribed observer stays quiet")
}
