package cart

import (
	"math"
	"sync"
)

// DefaultMaxQuantity bounds a line item's quantity when the item does not
// carry its own limit.
const DefaultMaxQuantity = 99

// Pricing rules for the order summary.
const (
	FreeShippingThreshold = 100.0
	ShippingFee           = 9.99
	TaxRate               = 0.10
)

// Item is a single cart line: one product/variant at a given quantity.
// Quantity is always within [1, max]; a line that would drop to zero is
// removed instead.
type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Image        string  `json:"image,omitempty"`
	Variant      string  `json:"variant,omitempty"`
	CategorySlug string  `json:"categorySlug,omitempty"`
	ProductSlug  string  `json:"productSlug,omitempty"`
	MaxQuantity  int     `json:"maxQuantity,omitempty"`
}

func (it Item) maxQty() int {
	if it.MaxQuantity > 0 {
		return it.MaxQuantity
	}
	return DefaultMaxQuantity
}

// Totals are derived on every read, never cached.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Observer is notified after every cart mutation with the new line items and
// the recomputed totals. Observers run with the store lock held and must not
// call back into the store.
type Observer func(items []Item, totals Totals)

// Store holds the ordered line items of one shopping session. All operations
// are total: unknown ids are no-ops, quantities are clamped, nothing errors.
type Store struct {
	mu        sync.Mutex
	items     []Item
	observers map[int]Observer
	nextObs   int
}

func NewStore() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// Add inserts a new line for item, or increases the quantity of the existing
// line with the same id. The resulting quantity is clamped to [1, max].
func (s *Store) Add(item Item, quantity int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity = clamp(s.items[i].Quantity+quantity, 1, s.items[i].maxQty())
			s.notifyLocked()
			s.mu.Unlock()
			return
		}
	}
	item.Quantity = clamp(quantity, 1, item.maxQty())
	s.items = append(s.items, item)
	s.notifyLocked()
	s.mu.Unlock()
}

// UpdateQuantity sets the quantity of the line with the given id, clamped to
// [1, max]. Absent ids are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = clamp(quantity, 1, s.items[i].maxQty())
			s.notifyLocked()
			break
		}
	}
	s.mu.Unlock()
}

// Remove deletes the line with the given id entirely.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notifyLocked()
			break
		}
	}
	s.mu.Unlock()
}

// Clear empties the cart. Called after checkout completes.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.notifyLocked()
	s.mu.Unlock()
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

// Subtotal is the sum of price times quantity over all lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.items)
}

// Totals recomputes the order summary from the current lines.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeTotals(s.items)
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(obs Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = obs
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) itemsLocked() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) notifyLocked() {
	if len(s.observers) == 0 {
		return
	}
	items := s.itemsLocked()
	totals := computeTotals(s.items)
	for _, obs := range s.observers {
		obs(items, totals)
	}
}

func subtotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func computeTotals(items []Item) Totals {
	sub := subtotal(items)
	shipping := ShippingFee
	if sub > FreeShippingThreshold {
		shipping = 0
	}
	tax := sub * TaxRate
	return Totals{
		Subtotal: round2(sub),
		Shipping: shipping,
		Tax:      round2(tax),
		Total:    round2(sub + shipping + tax),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
