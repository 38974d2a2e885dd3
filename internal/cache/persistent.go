package cache

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/samber/mo"
)

type persistentData[K comparable, V any] struct {
	Entries map[K]V `json:"entries"`
}

// Persistent stores entries in a single JSON file through gache.
type Persistent[K comparable, V any] struct {
	internal *gache.Cache[*persistentData[K, V]]
	mu       sync.RWMutex
}

// NewPersistent opens a file-backed cache at path. A zero lifetime never expires.
func NewPersistent[K comparable, V any](path string, lifetime time.Duration) *Persistent[K, V] {
	return &Persistent[K, V]{
		internal: gache.New[*persistentData[K, V]](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (p *Persistent[K, V]) Get(key K) mo.Option[V] {
	p.mu.RLock()
	defer p.mu.RUnlock()

	data, expired, err := p.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[V]()
	}

	if v, ok := data.Entries[key]; ok {
		return mo.Some(v)
	}
	return mo.None[V]()
}

func (p *Persistent[K, V]) Set(key K, value V) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, expired, err := p.internal.Get()
	if err != nil || expired || data == nil || data.Entries == nil {
		data = &persistentData[K, V]{Entries: make(map[K]V)}
	}

	data.Entries[key] = value
	return p.internal.Set(data)
}

// Delete removes key, if present. A missing file is not an error.
func (p *Persistent[K, V]) Delete(key K) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, expired, err := p.internal.Get()
	if err != nil {
		return err
	}
	if expired || data == nil {
		return nil
	}

	delete(data.Entries, key)
	return p.internal.Set(data)
}
