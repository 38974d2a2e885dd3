// Package cache provides the key/value stores behind thread and episode memoization.
//
// Entries are never invalidated by the caller: a Memory lives as long as the
// process, a Persistent as long as its configured lifetime.
package cache

import (
	"sync"

	"github.com/samber/mo"
)

// Cache is a read-through store. Get never fails; a miss is mo.None.
type Cache[K comparable, V any] interface {
	Get(key K) mo.Option[V]
	Set(key K, value V) error
}

// Memory is a process-lifetime map guarded for concurrent hosts.
type Memory[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func NewMemory[K comparable, V any]() *Memory[K, V] {
	return &Memory[K, V]{items: make(map[K]V)}
}

func (m *Memory[K, V]) Get(key K) mo.Option[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.items[key]; ok {
		return mo.Some(v)
	}
	return mo.None[V]()
}

func (m *Memory[K, V]) Set(key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

// Len returns the number of entries.
func (m *Memory[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Layered serves reads from front and falls back to back, promoting hits.
// Writes go to both; a failing back write is returned but front keeps the value.
type Layered[K comparable, V any] struct {
	front *Memory[K, V]
	back  Cache[K, V]
}

func NewLayered[K comparable, V any](back Cache[K, V]) *Layered[K, V] {
	return &Layered[K, V]{front: NewMemory[K, V](), back: back}
}

func (l *Layered[K, V]) Get(key K) mo.Option[V] {
	if v := l.front.Get(key); v.IsPresent() {
		return v
	}

	v := l.back.Get(key)
	if value, ok := v.Get(); ok {
		_ = l.front.Set(key, value)
	}
	return v
}

func (l *Layered[K, V]) Set(key K, value V) error {
	_ = l.front.Set(key, value)
	return l.back.Set(key, value)
}
