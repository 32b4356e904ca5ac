package providers

import (
	"fmt"
	"sync"
	"time"
)

// local mocks to avoid an import cycle with testutil

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (m *testLogger) record(level string, t TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, level+" "+t.String()+" "+fmt.Sprintf(format, args...))
}

func (m *testLogger) Errorf(t TypeEnum, f string, a ...interface{}) { m.record("error", t, f, a...) }
func (m *testLogger) Warnf(t TypeEnum, f string, a ...interface{})  { m.record("warn", t, f, a...) }
func (m *testLogger) Debugf(t TypeEnum, f string, a ...interface{}) { m.record("debug", t, f, a...) }
func (m *testLogger) Infof(t TypeEnum, f string, a ...interface{})  { m.record("info", t, f, a...) }
func (m *testLogger) Fatalf(t TypeEnum, f string, a ...interface{}) { m.record("fatal", t, f, a...) }
func (m *testLogger) Close()                                        {}

type testMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            map[string]int
	misses          map[string]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{hits: make(map[string]int), misses: make(map[string]int)}
}

func (m *testMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *testMetrics) ObserveRequestDuration(_ string, _ time.Duration)     { m.durationCalls++ }
func (m *testMetrics) IncCacheHits(key string)                              { m.hits[key]++ }
func (m *testMetrics) IncCacheMisses(key string)                            { m.misses[key]++ }
func (m *testMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (m *testMetrics) IncPersistenceErrors(_ string)                        {}
func (m *testMetrics) IncMutations(_ string)                                {}
func (m *testMetrics) SetUnreadNotifications(_ int)                         {}
func (m *testMetrics) IncRemindersFired(_ string)                           {}
