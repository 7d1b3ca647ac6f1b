// Package cache is the in-process hot tier over the persistent store: an
// LRU of marshaled panel payloads keyed by store key. Entries carry their
// capture time so the same age constraint applies to both tiers.
package cache

import (
	"encoding/json"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Kavesh2000/ERP/internal/localstore"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type store interface {
	Get(key string, dest any, maxAge time.Duration) localstore.Result
}

type entry struct {
	capturedAt time.Time
	raw        []byte
}

type Cache struct {
	size int
	lru  *lru.Cache[string, entry]
	now  func() time.Time
}

func New(size int) (*Cache, error) {
	c, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		size: size,
		lru:  c,
		now:  time.Now,
	}, nil
}

// Warm preloads keys from the persistent store so the first panel load
// after a restart does not pay an API round trip. Failures are skipped.
func (c *Cache) Warm(store store, keys []string) {
	for _, key := range keys {
		var raw json.RawMessage
		if res := store.Get(key, &raw, 0); res.OK() {
			c.set(key, raw, res.CapturedAt)
		}
	}
}

// Get returns the cached payload unless it is missing or older than
// maxAge. maxAge <= 0 disables the age check.
func (c *Cache) Get(key string, maxAge time.Duration) ([]byte, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if maxAge > 0 && c.now().Sub(e.capturedAt) > maxAge {
		return nil, false
	}
	return e.raw, true
}

func (c *Cache) Set(key string, raw []byte) {
	c.set(key, raw, c.now())
}

// SetAt stores a payload with an explicit capture time, so an entry
// recovered from the persistent store keeps its original age.
func (c *Cache) SetAt(key string, raw []byte, capturedAt time.Time) {
	c.set(key, raw, capturedAt)
}

func (c *Cache) Remove(key string) {
	c.lru.Remove(key)
}

func (c *Cache) set(key string, raw []byte, capturedAt time.Time) {
	c.lru.Add(key, entry{capturedAt: capturedAt, raw: raw})
}
