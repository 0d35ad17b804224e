package memory

import (
	"context"
	"sync"

	"github.com/orafinite/ecom-fe/internal/datamodels/order"
)

type orderRepo struct {
	mu     sync.Mutex
	orders []*order.Order
}

// NewOrderRepository keeps completed orders in memory. Checkout is mocked end
// to end, so orders only need to survive for the process lifetime.
func NewOrderRepository() order.Repository {
	return &orderRepo{}
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	r.orders = append(r.orders, o)
	r.mu.Unlock()
	return nil
}

func (r *orderRepo) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.orders)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]*order.Order, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}
