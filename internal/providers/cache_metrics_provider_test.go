package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type cacheMetricsTestInner struct {
	data map[string][]byte
}

func (c *cacheMetricsTestInner) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}
func (c *cacheMetricsTestInner) Set(key string, value []byte) {
	c.data[key] = value
}
func (c *cacheMetricsTestInner) Del(key string) {
	delete(c.data, key)
}

func TestInstrumentedDocumentCache_HitAndMissPerKey(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{"userProfile": []byte(`{"name":"Alex"}`)}}
	metrics := newTestMetrics()
	cache := &InstrumentedDocumentCache{inner: inner, metrics: metrics}

	val, ok := cache.Get("userProfile")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"name":"Alex"}`), val)

	val, ok = cache.Get("meals")
	assert.False(t, ok)
	assert.Nil(t, val)
	cache.Get("meals")

	assert.Equal(t, map[string]int{"userProfile": 1}, metrics.hits)
	assert.Equal(t, map[string]int{"meals": 2}, metrics.misses)
}

func TestInstrumentedDocumentCache_SetAndDelDelegate(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	metrics := newTestMetrics()
	cache := &InstrumentedDocumentCache{inner: inner, metrics: metrics}

	cache.Set("waterIntake", []byte(`[]`))
	val, ok := inner.Get("waterIntake")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)

	cache.Del("waterIntake")
	_, ok = inner.Get("waterIntake")
	assert.False(t, ok)
	assert.Empty(t, metrics.hits)
	assert.Empty(t, metrics.misses)
}

func TestNewInstrumentedCacheProvider(t *testing.T) {
	disabled := NewInstrumentedCacheProvider(cacheConfig(false, 1, time.Minute), &testLogger{}, newTestMetrics())
	assert.IsType(t, &noopCache{}, disabled)

	enabled := NewInstrumentedCacheProvider(cacheConfig(true, 1, time.Minute), &testLogger{}, newTestMetrics())
	assert.IsType(t, &InstrumentedDocumentCache{}, enabled)
}
