package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a registry of named metrics of type T
// Lookup is mutex guarded; callers cache the returned pointer and update it lock-free
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric pointer for key, creating if absent
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Range calls fn for each metric in key order
// fn runs outside the lock and may call Get
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	snapshot := maps.Clone(m.items)
	m.mu.Unlock()

	for _, k := range slices.Sorted(maps.Keys(snapshot)) {
		fn(k, snapshot[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
