// Package cache implements the conversion cache named in SPEC_FULL.md
// §10.5: an in-process unmodified-DOM cache (Memory, grounded on the
// teacher's providers/base/cache.go ASTCache) and a durable SQLite-backed
// run history (Store, grounded on db/sqlite.go and models/models.go).
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oxhq/dearbind/internal/dom"
)

// Memory is a lock-free, in-process cache of parsed-and-unmodified DOM
// snapshots keyed by SHA-256 of the source bytes, mirroring ASTCache's
// sync.Map-plus-atomic-counters shape.
type Memory struct {
	entries     sync.Map // hash (string) -> *entry
	hits        atomic.Int64
	misses      atomic.Int64
	evictions   atomic.Int64
	maxAge      time.Duration
	cleanupOnce sync.Once
}

type entry struct {
	tree      *dom.HeaderFileSet
	timestamp time.Time
}

// NewMemory returns a Memory cache that evicts entries older than maxAge.
// maxAge <= 0 disables time-based eviction (entries live until process
// exit).
func NewMemory(maxAge time.Duration) *Memory {
	return &Memory{maxAge: maxAge}
}

// HashSource computes the cache key for a source header's raw bytes.
func HashSource(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached unmodified clone for hash, if present and not
// expired.
func (m *Memory) Get(hash string) (*dom.HeaderFileSet, bool) {
	v, ok := m.entries.Load(hash)
	if !ok {
		m.misses.Add(1)
		return nil, false
	}
	e := v.(*entry)
	if m.maxAge > 0 && time.Since(e.timestamp) > m.maxAge {
		m.entries.Delete(hash)
		m.evictions.Add(1)
		m.misses.Add(1)
		return nil, false
	}
	m.hits.Add(1)
	return e.tree, true
}

// Put stores tree under hash, replacing any prior entry. It starts the
// single background eviction goroutine on first use if maxAge > 0.
func (m *Memory) Put(hash string, tree *dom.HeaderFileSet) {
	m.entries.Store(hash, &entry{tree: tree, timestamp: time.Now()})
	if m.maxAge > 0 {
		m.cleanupOnce.Do(func() { go m.evictExpiredPeriodically() })
	}
}

func (m *Memory) evictExpiredPeriodically() {
	ticker := time.NewTicker(m.maxAge)
	defer ticker.Stop()
	for range ticker.C {
		m.pruneExpired()
	}
}

func (m *Memory) pruneExpired() {
	now := time.Now()
	m.entries.Range(func(key, value any) bool {
		e := value.(*entry)
		if now.Sub(e.timestamp) > m.maxAge {
			m.entries.Delete(key)
			m.evictions.Add(1)
		}
		return true
	})
}

// Stats reports hit/miss/eviction counters, in the same shape ASTCache.Stats
// reports them (minus hit_rate, computed trivially by a caller that wants it).
func (m *Memory) Stats() map[string]int64 {
	return map[string]int64{
		"hits":      m.hits.Load(),
		"misses":    m.misses.Load(),
		"evictions": m.evictions.Load(),
	}
}
