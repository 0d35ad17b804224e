package order

import (
	"context"
	"time"

	"github.com/orafinite/ecom-fe/internal/datamodels/cart"
)

// ShippingInfo is the checkout form. Only the basic required fields are
// validated; payment details are accepted but never charged.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Order is the confirmation produced by a completed checkout: a snapshot of
// the cart lines and totals at purchase time.
type Order struct {
	ID        string       `json:"id"`
	Items     []cart.Item  `json:"items"`
	Totals    cart.Totals  `json:"totals"`
	Shipping  ShippingInfo `json:"shipping"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Repository keeps completed orders for the lifetime of the process.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListRecent(ctx context.Context, limit int) ([]*Order, error)
}
