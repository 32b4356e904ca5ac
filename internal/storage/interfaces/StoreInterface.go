package interfaces

// StoreInterface is a durable key-value store holding one JSON document
// per key. Get reports ok=false for a key that was never written.
type StoreInterface interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Close() error
}
