package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oakline/storefront/internal/cache"
	"github.com/oakline/storefront/internal/models"
)

// OrderStore keeps created orders for the life of the process and mirrors
// each one into the session-scoped cache under "order_<id>", so a restarted
// process within the same session can still resolve lookups.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	mirror cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewOrderStore(mirror cache.Cache, ttl time.Duration) *OrderStore {
	return &OrderStore{
		orders: make(map[string]models.Order),
		mirror: mirror,
		ttl:    ttl,
		logger: slog.Default(),
	}
}

// Save stores the order in memory and writes through to the mirror. A mirror
// failure is logged but does not fail the save; the in-memory copy still
// serves same-process lookups.
func (s *OrderStore) Save(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	s.orders[order.ID] = *order
	s.mu.Unlock()

	if s.mirror == nil {
		return nil
	}

	if err := s.mirror.Set(ctx, cache.Key(cache.OrderKeyPrefix, order.ID), order, s.ttl); err != nil {
		s.logger.Warn("Failed to mirror order to session store",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// Get checks the in-memory map first, falls back to the session mirror, and
// reports found=false when neither has the id.
func (s *OrderStore) Get(ctx context.Context, id string) (*models.Order, bool, error) {
	s.mu.RLock()
	order, ok := s.orders[id]
	s.mu.RUnlock()

	if ok {
		return &order, true, nil
	}

	if s.mirror == nil {
		return nil, false, nil
	}

	var mirrored models.Order

	found, err := s.mirror.Get(ctx, cache.Key(cache.OrderKeyPrefix, id), &mirrored)
	if err != nil {
		return nil, false, err
	}

	if !found {
		return nil, false, nil
	}

	return &mirrored, true, nil
}
