package jikan

import (
	"sync"
	"time"

	"github.com/anisan-cli/jikancsv/filesystem"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// cacheEntry is a cached value with the time it was stored.
type cacheEntry[T any] struct {
	Value  T         `json:"value"`
	Stored time.Time `json:"stored"`
}

// cacheData defines the structured format for persisting cached responses to disk.
type cacheData[K comparable, T any] struct {
	Entries map[K]cacheEntry[T] `json:"entries"`
}

// cacher provides a generic, thread-safe wrapper over a single gache file.
// Every entry expires lifetime after it was stored, regardless of later writes to the file.
type cacher[K comparable, T any] struct {
	internal *gache.Cache[*cacheData[K, T]]
	lifetime time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

func newCacher[K comparable, T any](path string, lifetime time.Duration) *cacher[K, T] {
	return &cacher[K, T]{
		internal: gache.New[*cacheData[K, T]](
			&gache.Options{
				Path:       path,
				Lifetime:   lifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (c *cacher[K, T]) expired(entry cacheEntry[T]) bool {
	return c.lifetime > 0 && c.now().Sub(entry.Stored) >= c.lifetime
}

// Get retrieves a value from the cache associated with the specified key.
func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if entry, ok := data.Entries[key]; ok && !c.expired(entry) {
		return mo.Some(entry.Value)
	}

	return mo.None[T]()
}

// Set persists a key-value pair to the cache. Expired entries are dropped on the way.
func (c *cacher[K, T]) Set(key K, t T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Entries == nil {
		data = &cacheData[K, T]{Entries: make(map[K]cacheEntry[T])}
	}

	for k, entry := range data.Entries {
		if c.expired(entry) {
			delete(data.Entries, k)
		}
	}

	data.Entries[key] = cacheEntry[T]{Value: t, Stored: c.now()}
	return c.internal.Set(data)
}
