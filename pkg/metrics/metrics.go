package metrics

import "sync"

// Process-wide gauge registry. Background monitor jobs publish here and
// the health endpoint reads a snapshot back out.

var (
	mu     sync.RWMutex
	gauges = make(map[string]int64)
)

// SetGauge records the current value of a named gauge.
func SetGauge(name string, value int64) {
	mu.Lock()
	gauges[name] = value
	mu.Unlock()
}

// Gauge returns the last recorded value of a gauge, zero if never set.
func Gauge(name string) int64 {
	mu.RLock()
	defer mu.RUnlock()
	return gauges[name]
}

// Gauges returns a copy of every recorded gauge.
func Gauges() map[string]int64 {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]int64, len(gauges))
	for k, v := range gauges {
		out[k] = v
	}
	return out
}
