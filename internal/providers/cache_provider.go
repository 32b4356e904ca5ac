package providers

import (
	"fitviz/internal/structures"
	"github.com/coocood/freecache"
	"unsafe"
)

// CacheProviderInterface holds encoded documents by storage key
// (userProfile, sleepData, waterIntake, meals, workouts,
// fitviz-notifications).
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, document []byte)
	Del(key string)
}

// DocumentCache keeps the last encoded copy of each document in freecache so
// repeated reads skip the driver and decompression.
type DocumentCache struct {
	cache *freecache.Cache
	ttl   int
}

// NewCacheProvider sizes the cache in megabytes. A zero TTL keeps a document
// until it is rewritten, deleted or evicted.
func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeStorage, "Document cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := max(int(conf.Cache.TTL.Seconds()), 0)

	logger.Infof(TypeStorage, "Document cache ready: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &DocumentCache{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// keyBytes views the key without copying. freecache copies keys on Set and
// never writes through them.
func keyBytes(key string) []byte {
	if len(key) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(key), len(key))
}

func (c *DocumentCache) Get(key string) ([]byte, bool) {
	document, err := c.cache.Get(keyBytes(key))
	if err != nil {
		return nil, false
	}
	return document, true
}

// Set drops any older copy when freecache refuses the document (larger than
// 1/1024 of the cache), so the next read goes to the driver instead of
// returning stale data.
func (c *DocumentCache) Set(key string, document []byte) {
	if err := c.cache.Set(keyBytes(key), document, c.ttl); err != nil {
		c.cache.Del(keyBytes(key))
	}
}

func (c *DocumentCache) Del(key string) {
	c.cache.Del(keyBytes(key))
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Del(_ string)                {}
