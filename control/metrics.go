// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for thread bootstrap monitoring.
// Counters cover lifecycle events; gauges hold arbitrary last-written
// values with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds monotonic counters plus free-form gauge values.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]uint64
	gauges   map[string]any
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]uint64),
		gauges:   make(map[string]any),
	}
}

// Inc bumps the named counter by one.
func (mr *MetricsRegistry) Inc(key string) { mr.Add(key, 1) }

// Add bumps the named counter by delta.
func (mr *MetricsRegistry) Add(key string, delta uint64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Counter reads the named counter; absent counters read zero.
func (mr *MetricsRegistry) Counter(key string) uint64 {
	mr.mu.RLock()
	v := mr.counters[key]
	mr.mu.RUnlock()
	return v
}

// Set sets or updates a gauge key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.gauges[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest counters and gauges in one map.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.counters)+len(mr.gauges))
	for k, v := range mr.counters {
		out[k] = v
	}
	for k, v := range mr.gauges {
		out[k] = v
	}
	return out
}
