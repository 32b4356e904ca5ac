package testutil

import (
	"errors"
	"fitviz/internal/providers"
	"sort"
	"sync"
	"time"
)

var ErrInjected = errors.New("injected failure")

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface and keeps
// counters in plain maps.
type MockMetrics struct {
	mu                sync.Mutex
	Requests          map[string]int
	CacheHits         map[string]int
	CacheMisses       map[string]int
	PersistenceErrors map[string]int
	Mutations         map[string]int
	Unread            int
	RemindersFired    map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:          make(map[string]int),
		CacheHits:         make(map[string]int),
		CacheMisses:       make(map[string]int),
		PersistenceErrors: make(map[string]int),
		Mutations:         make(map[string]int),
		RemindersFired:    make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(string, time.Duration) {}

func (m *MockMetrics) IncCacheHits(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits[key]++
}

func (m *MockMetrics) IncCacheMisses(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses[key]++
}

func (m *MockMetrics) ObservePersistenceDuration(string, time.Duration) {}

func (m *MockMetrics) IncPersistenceErrors(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceErrors[key]++
}

func (m *MockMetrics) IncMutations(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mutations[operation]++
}

func (m *MockMetrics) SetUnreadNotifications(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unread = count
}

func (m *MockMetrics) IncRemindersFired(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemindersFired[kind]++
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockStore implements interfaces.StoreInterface over a map. GetErr and
// SetErr, when set, are returned instead of touching the map.
type MockStore struct {
	mu       sync.Mutex
	Data     map[string][]byte
	GetErr   error
	SetErr   error
	SetCalls map[string]int
	Closed   bool
}

func NewMockStore() *MockStore {
	return &MockStore{Data: make(map[string][]byte), SetCalls: make(map[string]int)}
}

func (m *MockStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	val, ok := m.Data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (m *MockStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls[key]++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Put seeds a raw document.
func (m *MockStore) Put(key, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = []byte(raw)
}

func (m *MockStore) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return string(val), ok
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// FakeClock implements providers.Clock. Time only moves on Advance, which
// runs due timers synchronously in deadline order.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock *FakeClock
	when  time.Time
	seq   int
	f     func()
	done  bool
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Today() string {
	return c.Now().Format(providers.DateLayout)
}

func (c *FakeClock) Location() *time.Location {
	return c.Now().Location()
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) providers.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Set moves the clock to now without firing anything.
func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Pending returns the number of armed timers.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(a, b int) bool {
			if !c.timers[a].when.Equal(c.timers[b].when) {
				return c.timers[a].when.Before(c.timers[b].when)
			}
			return c.timers[a].seq < c.timers[b].seq
		})
		if len(c.timers) == 0 || c.timers[0].when.After(target) {
			c.now = target
			c.mu.Unlock()
			return
		}
		t := c.timers[0]
		c.timers = c.timers[1:]
		t.done = true
		if t.when.After(c.now) {
			c.now = t.when
		}
		c.mu.Unlock()

		t.f()
	}
}

func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			break
		}
	}
	return true
}
