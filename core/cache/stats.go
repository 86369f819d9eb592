package cache

import (
	"sync/atomic"
	"time"
)

// Stats counts what the document cache itself observes: lookups that hit
// or miss, documents admitted, and explicit invalidations after content
// changes. Ristretto's internal admission and eviction bookkeeping is not
// mirrored here.
type Stats struct {
	hits          atomic.Int64
	misses        atomic.Int64
	sets          atomic.Int64
	invalidations atomic.Int64
	startNanos    atomic.Int64
}

// NewStats creates a new Stats instance.
func NewStats() *Stats {
	s := &Stats{}
	s.startNanos.Store(time.Now().UnixNano())
	return s
}

// RecordHit records a lookup served from the cache.
func (s *Stats) RecordHit() {
	s.hits.Add(1)
}

// RecordMiss records a lookup that fell through to the store.
func (s *Stats) RecordMiss() {
	s.misses.Add(1)
}

// RecordSet records a document admitted to the cache.
func (s *Stats) RecordSet() {
	s.sets.Add(1)
}

// RecordInvalidation records an explicit removal, typically after the
// underlying document changed or was reloaded.
func (s *Stats) RecordInvalidation() {
	s.invalidations.Add(1)
}

// Hits returns the number of lookups served from the cache.
func (s *Stats) Hits() int64 {
	return s.hits.Load()
}

// Misses returns the number of lookups that fell through to the store.
func (s *Stats) Misses() int64 {
	return s.misses.Load()
}

// Sets returns the number of documents admitted.
func (s *Stats) Sets() int64 {
	return s.sets.Load()
}

// Invalidations returns the number of explicit removals.
func (s *Stats) Invalidations() int64 {
	return s.invalidations.Load()
}

// Lookups returns the total number of lookups (hits + misses).
func (s *Stats) Lookups() int64 {
	return s.Hits() + s.Misses()
}

// HitRate returns the fraction of lookups served from the cache,
// between 0 and 1.
func (s *Stats) HitRate() float64 {
	lookups := s.Lookups()
	if lookups == 0 {
		return 0
	}
	return float64(s.Hits()) / float64(lookups)
}

// Uptime returns the duration since the stats were created or reset.
func (s *Stats) Uptime() time.Duration {
	return time.Duration(time.Now().UnixNano() - s.startNanos.Load())
}

// Reset resets all counters and the uptime clock.
func (s *Stats) Reset() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.sets.Store(0)
	s.invalidations.Store(0)
	s.startNanos.Store(time.Now().UnixNano())
}

// Snapshot returns a point-in-time copy of the counters.
func (s *Stats) Snapshot() *Stats {
	snapshot := &Stats{}
	snapshot.hits.Store(s.hits.Load())
	snapshot.misses.Store(s.misses.Load())
	snapshot.sets.Store(s.sets.Load())
	snapshot.invalidations.Store(s.invalidations.Load())
	snapshot.startNanos.Store(s.startNanos.Load())
	return snapshot
}
