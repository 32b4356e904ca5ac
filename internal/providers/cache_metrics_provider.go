package providers

import "fitviz/internal/structures"

// InstrumentedDocumentCache counts hits and misses per document key, so a
// collection that keeps missing (evicted, or too large to cache) shows up on
// its own series.
type InstrumentedDocumentCache struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *InstrumentedDocumentCache) Get(key string) ([]byte, bool) {
	document, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits(key)
	} else {
		c.metrics.IncCacheMisses(key)
	}
	return document, ok
}

func (c *InstrumentedDocumentCache) Set(key string, document []byte) {
	c.inner.Set(key, document)
}

func (c *InstrumentedDocumentCache) Del(key string) {
	c.inner.Del(key)
}

// NewInstrumentedCacheProvider returns the disabled cache unwrapped, since
// every lookup on it would count as a miss.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &InstrumentedDocumentCache{
		inner:   inner,
		metrics: metrics,
	}
}
