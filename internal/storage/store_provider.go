package storage

import (
	"fitviz/internal/providers"
	"fitviz/internal/storage/interfaces"
	"fitviz/internal/structures"
	"fmt"
)

// NewStoreProvider builds the configured driver wrapped in the cache and the
// in-memory fallback. The returned cleanup closes the driver and the
// compressor.
func NewStoreProvider(conf *structures.Config, compressor interfaces.CompressorInterface, cache providers.CacheProviderInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) (interfaces.StoreInterface, func(), error) {
	var (
		driver interfaces.StoreInterface
		err    error
	)

	switch conf.Storage.Driver {
	case "file":
		driver, err = NewFileStore(conf.Storage.Dir, compressor)
	case "sqlite":
		driver, err = NewSqliteStore(conf.Storage.Dsn)
	case "memory", "":
		driver = NewMemoryStore()
	default:
		err = fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}

	var store *DegradingStore
	if err != nil {
		// an unreachable backend still gives a working, memory-only session
		logger.Errorf(providers.TypeStorage, "Storage driver %s unavailable: %s; using memory", conf.Storage.Driver, err)
		store = NewDegradingStore(NewMemoryStore(), logger, metrics)
		store.degraded.Store(true)
	} else {
		logger.Infof(providers.TypeStorage, "Storage driver %s ready", conf.Storage.Driver)
		store = NewDegradingStore(NewCachedStore(driver, cache), logger, metrics)
	}

	cleanup := func() {
		if cerr := store.Close(); cerr != nil {
			logger.Errorf(providers.TypeStorage, "Close storage: %s", cerr)
		}
		compressor.Close()
	}
	return store, cleanup, nil
}
