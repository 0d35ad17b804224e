package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orafinite/ecom-fe/internal/datamodels/cart"
	"github.com/orafinite/ecom-fe/internal/datamodels/order"
)

var (
	// ErrMissingFields means a required checkout field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmptyCart means checkout was attempted with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

type OrderService struct {
	repo order.Repository
}

func NewOrderService(repo order.Repository) *OrderService {
	return &OrderService{repo: repo}
}

// PlaceOrder completes checkout for the given cart: basic required-field
// validation, a snapshot of lines and totals, then the cart is cleared.
// Payment is simulated, nothing is charged.
func (s *OrderService) PlaceOrder(ctx context.Context, c *cart.Store, info order.ShippingInfo) (*order.Order, error) {
	if info.FirstName == "" || info.LastName == "" || info.Email == "" || info.Address == "" {
		return nil, ErrMissingFields
	}
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	o := &order.Order{
		ID:        uuid.NewString(),
		Items:     items,
		Totals:    c.Totals(),
		Shipping:  info,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	c.Clear()
	zap.L().Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("lines", len(o.Items)),
		zap.Float64("total", o.Totals.Total))
	return o, nil
}

// ListRecent returns the newest completed orders.
func (s *OrderService) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	return s.repo.ListRecent(ctx, limit)
}
