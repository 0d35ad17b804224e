package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/orafinite/ecom-fe/internal/datamodels/cart"
)

// CartService hands out one cart store per shopping session. The store itself
// owns the mutation rules (clamping, derived totals); this service only maps
// session ids to stores.
type CartService struct {
	mu     sync.Mutex
	stores map[string]*cart.Store
}

func NewCartService() *CartService {
	return &CartService{stores: make(map[string]*cart.Store)}
}

// Store returns the cart for the given session, creating it on first use.
func (s *CartService) Store(sessionID string) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stores[sessionID]
	if !ok {
		st = cart.NewStore()
		st.Subscribe(func(items []cart.Item, totals cart.Totals) {
			zap.L().Debug("cart changed",
				zap.String("session", sessionID),
				zap.Int("lines", len(items)),
				zap.Float64("total", totals.Total))
		})
		s.stores[sessionID] = st
	}
	return st
}
