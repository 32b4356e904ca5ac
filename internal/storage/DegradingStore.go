package storage

import (
	"fitviz/internal/providers"
	"fitviz/internal/storage/interfaces"
	"fmt"
	"go.uber.org/atomic"
	"time"
)

// DegradingStore forwards to durable storage until the first failed write,
// then keeps the rest of the session in memory. Data written after that point
// is lost on restart. A failed read concerns one document only: the error is
// returned and the store stays durable.
type DegradingStore struct {
	primary  interfaces.StoreInterface
	fallback *MemoryStore
	degraded atomic.Bool
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewDegradingStore(primary interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *DegradingStore {
	return &DegradingStore{
		primary:  primary,
		fallback: NewMemoryStore(),
		logger:   logger,
		metrics:  metrics,
	}
}

func (d *DegradingStore) Degraded() bool {
	return d.degraded.Load()
}

func (d *DegradingStore) degrade(op, key string, err error) {
	if d.degraded.CompareAndSwap(false, true) {
		d.logger.Errorf(providers.TypeStorage, "Durable storage failed on %s %s: %s; continuing in memory only", op, key, err)
	}
}

func (d *DegradingStore) Get(key string) ([]byte, bool, error) {
	if d.degraded.Load() {
		return d.fallback.Get(key)
	}
	val, ok, err := d.primary.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return val, ok, nil
}

func (d *DegradingStore) Set(key string, value []byte) error {
	if d.degraded.Load() {
		return d.fallback.Set(key, value)
	}

	start := time.Now()
	err := d.primary.Set(key, value)
	d.metrics.ObservePersistenceDuration(key, time.Since(start))
	if err != nil {
		d.metrics.IncPersistenceErrors(key)
		d.degrade("write", key, err)
		return d.fallback.Set(key, value)
	}
	return nil
}

func (d *DegradingStore) Close() error {
	return d.primary.Close()
}
