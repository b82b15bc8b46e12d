// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Counter-oriented metrics registry. Components snapshot their own
// atomic counters into the registry on demand, keeping registry locks
// off any hot path.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds named counters behind one lock.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]uint64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]uint64),
	}
}

// Set sets or replaces a counter value.
func (mr *MetricsRegistry) Set(key string, value uint64) {
	mr.mu.Lock()
	mr.counters[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Add increments a counter by delta, creating it at delta if absent.
func (mr *MetricsRegistry) Add(key string, delta uint64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns one counter value, zero if absent.
func (mr *MetricsRegistry) Get(key string) uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// GetSnapshot returns a copy of all counters.
func (mr *MetricsRegistry) GetSnapshot() map[string]uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]uint64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last write.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
