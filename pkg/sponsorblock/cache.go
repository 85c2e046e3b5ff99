package sponsorblock

import (
	"strings"
	"sync"
	"time"
)

// Default TTLs per cached operation. These mirror how quickly each
// resource actually changes server-side.
const (
	skipSegmentsTTL = 5 * time.Minute
	segmentInfoTTL  = 5 * time.Minute
	userInfoTTL     = 15 * time.Minute
	userNameTTL     = time.Minute
	userViewsTTL    = time.Minute
	totalStatsTTL   = time.Minute
	topUsersTTL     = time.Hour
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// ttlCache is a mutex-guarded map of operation results with per-entry
// expiry. now is a field so tests can inject a fake clock.
type ttlCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	override time.Duration // replaces every per-op TTL when non-zero
	disabled bool
	now      func() time.Time
}

func newTTLCache() *ttlCache {
	return &ttlCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *ttlCache) get(key string) (any, bool) {
	if c.disabled {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *ttlCache) put(key string, value any, ttl time.Duration) {
	if c.disabled {
		return
	}
	if c.override > 0 {
		ttl = c.override
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
}

// cacheKey joins the operation name with its ordered arguments. NUL is
// not a valid character in any argument, so the key cannot collide.
func cacheKey(op string, args ...string) string {
	return op + "\x00" + strings.Join(args, "\x00")
}

// cachedCall returns the cached value for key when fresh, otherwise runs
// fetch and stores the result. Errors are never cached.
func cachedCall[T any](c *ttlCache, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := c.get(key); ok {
		return v.(T), nil
	}
	v, err := fetch()
	if err != nil {
		return v, err
	}
	c.put(key, v, ttl)
	return v, nil
}
