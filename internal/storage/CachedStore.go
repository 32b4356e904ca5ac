package storage

import (
	"fitviz/internal/providers"
	"fitviz/internal/storage/interfaces"
)

// CachedStore is a read-through, write-through cache in front of a store.
type CachedStore struct {
	inner interfaces.StoreInterface
	cache providers.CacheProviderInterface
}

func NewCachedStore(inner interfaces.StoreInterface, cache providers.CacheProviderInterface) *CachedStore {
	return &CachedStore{inner: inner, cache: cache}
}

func (c *CachedStore) Get(key string) ([]byte, bool, error) {
	if val, ok := c.cache.Get(key); ok {
		return val, true, nil
	}
	val, ok, err := c.inner.Get(key)
	if err != nil || !ok {
		return val, ok, err
	}
	c.cache.Set(key, val)
	return val, true, nil
}

func (c *CachedStore) Set(key string, value []byte) error {
	if err := c.inner.Set(key, value); err != nil {
		c.cache.Del(key)
		return err
	}
	c.cache.Set(key, value)
	return nil
}

func (c *CachedStore) Close() error {
	return c.inner.Close()
}
