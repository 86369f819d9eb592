// Package cache provides a high-performance read cache for served skill
// documents, fronting the content store for hosts that route many requests.
package cache

import (
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

const (
	defaultNumCounters = 1e5 // counters for admission policy
	defaultMaxCost     = 1e7 // 10MB max cost, the bundle is small
	defaultBufferItems = 64  // buffer items for async writes
	defaultTTL         = 10 * time.Minute
)

// DocumentCache caches documents by name with a TTL.
type DocumentCache struct {
	cache  *ristretto.Cache
	ttl    time.Duration
	stats  *Stats
	mu     sync.RWMutex
	closed bool
}

// Config configures the document cache.
type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
}

// NewDocumentCache creates a DocumentCache with the given configuration.
// Zero-valued fields fall back to defaults.
func NewDocumentCache(config *Config) (*DocumentCache, error) {
	cfg := applyDefaults(config)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &DocumentCache{
		cache: cache,
		ttl:   cfg.TTL,
		stats: NewStats(),
	}, nil
}

func applyDefaults(config *Config) *Config {
	cfg := &Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
		TTL:         defaultTTL,
	}

	if config == nil {
		return cfg
	}

	if config.NumCounters > 0 {
		cfg.NumCounters = config.NumCounters
	}
	if config.MaxCost > 0 {
		cfg.MaxCost = config.MaxCost
	}
	if config.BufferItems > 0 {
		cfg.BufferItems = config.BufferItems
	}
	if config.TTL > 0 {
		cfg.TTL = config.TTL
	}

	return cfg
}

// Get retrieves a cached document by name.
func (dc *DocumentCache) Get(name string) (*store.Document, bool) {
	if dc.isClosed() {
		return nil, false
	}

	value, found := dc.cache.Get(name)
	if !found {
		dc.stats.RecordMiss()
		return nil, false
	}

	doc, ok := value.(*store.Document)
	if !ok {
		dc.stats.RecordMiss()
		return nil, false
	}

	dc.stats.RecordHit()
	return doc, true
}

// Set stores a document with the default TTL.
func (dc *DocumentCache) Set(doc *store.Document) bool {
	return dc.SetWithTTL(doc, dc.ttl)
}

// SetWithTTL stores a document with a custom TTL.
// Cost is the document size plus a fixed overhead for metadata.
func (dc *DocumentCache) SetWithTTL(doc *store.Document, ttl time.Duration) bool {
	if dc.isClosed() || doc == nil {
		return false
	}

	cost := doc.Size + int64(len(doc.Name)+len(doc.Title)+128)
	stored := dc.cache.SetWithTTL(doc.Name, doc, cost, ttl)
	if stored {
		dc.stats.RecordSet()
	}
	return stored
}

// Delete invalidates an entry, typically after its document changed.
func (dc *DocumentCache) Delete(name string) {
	if dc.isClosed() {
		return
	}
	dc.cache.Del(name)
	dc.stats.RecordInvalidation()
}

// Clear removes all entries. Used after a store reload so stale bodies are
// never served.
func (dc *DocumentCache) Clear() {
	if dc.isClosed() {
		return
	}
	dc.cache.Clear()
	dc.stats.Reset()
}

// Wait waits for all pending sets to complete.
func (dc *DocumentCache) Wait() {
	if dc.isClosed() {
		return
	}
	dc.cache.Wait()
}

// Close closes the cache and releases resources.
func (dc *DocumentCache) Close() {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if dc.closed {
		return
	}
	dc.closed = true
	dc.cache.Close()
}

// Stats returns a snapshot of the current cache statistics.
func (dc *DocumentCache) Stats() *Stats {
	return dc.stats.Snapshot()
}

func (dc *DocumentCache) isClosed() bool {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.closed
}
