package metadata

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TokenFunc obtains a fresh access token and its lifetime.
type TokenFunc func(ctx context.Context) (token string, ttl time.Duration, err error)

// TokenCache holds the metadata API's access token with its expiry. Each
// client owns its own instance; nothing is package-level. Concurrent callers
// needing a refresh share one fetch.
type TokenCache struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	fetch  TokenFunc
	margin time.Duration
	sf     singleflight.Group
	now    func() time.Time
}

// NewTokenCache wraps fetch in a cache. Tokens are refreshed refreshMargin
// before their reported expiry so in-flight requests don't race the cutoff.
func NewTokenCache(fetch TokenFunc, refreshMargin time.Duration) *TokenCache {
	return &TokenCache{
		fetch:  fetch,
		margin: refreshMargin,
		now:    time.Now,
	}
}

// Token returns the cached token, fetching a new one if missing or close to
// expiry.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, expiresAt := c.token, c.expiresAt
	c.mu.RUnlock()
	if token != "" && c.now().Add(c.margin).Before(expiresAt) {
		return token, nil
	}

	result, err, _ := c.sf.Do("token", func() (interface{}, error) {
		fresh, ttl, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.token = fresh
		c.expiresAt = c.now().Add(ttl)
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Invalidate drops the cached token, forcing the next Token call to fetch.
// Used after the API rejects a token early.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
