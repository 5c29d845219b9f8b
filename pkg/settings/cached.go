package settings

import (
	"context"
	"time"

	"github.com/dmitrymomot/mailgate/pkg/cache"
)

const cacheKey = "settings"

// Cached serves settings from a cache and falls back to the wrapped store on a miss.
type Cached struct {
	next   Store
	loader *cache.Loader[Settings]
	ttl    time.Duration
}

// NewCached wraps next with c. A zero ttl uses the cache's default TTL.
func NewCached(next Store, c cache.Cache[Settings], ttl time.Duration) *Cached {
	return &Cached{next: next, loader: cache.NewLoader(c), ttl: ttl}
}

// Load implements Store. Concurrent misses trigger a single load.
func (s *Cached) Load(ctx context.Context) (Settings, error) {
	return s.loader.Get(ctx, cacheKey, s.ttl, s.next.Load)
}

// Invalidate drops the cached settings so the next Load hits the source.
func (s *Cached) Invalidate(ctx context.Context) error {
	return s.loader.Forget(ctx, cacheKey)
}
