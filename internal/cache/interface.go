// Package cache is the session-scoped mirror: values written here survive a
// process restart within the same browsing session, then expire.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key builds the persisted key layout, e.g. Key(OrderKeyPrefix, id) ->
// "order_<id>".
func Key(prefix string, id string) string {
	return prefix + "_" + id
}

const (
	OrderKeyPrefix = "order"
)
