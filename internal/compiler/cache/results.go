package cache

import (
	"sync"
	"time"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/errors"
)

// Result is the outcome of checking and generating one declaration file
type Result struct {
	Path        string
	Hash        string // hash of the declaration source
	Program     *ast.Program
	Diagnostics errors.ErrorList
	Output      []byte // generated Go source, nil when checking failed
	CachedAt    time.Time
}

// ResultCache provides in-memory caching of per-file results for watch mode
type ResultCache struct {
	entries map[string]*Result
	mu      sync.RWMutex
}

// NewResultCache creates a new result cache
func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string]*Result),
	}
}

// Get retrieves a cached result by file path
func (rc *ResultCache) Get(path string) (*Result, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	entry, exists := rc.entries[path]
	return entry, exists
}

// Lookup returns the cached result for path only if it was produced from
// source with the given hash
func (rc *ResultCache) Lookup(path, hash string) (*Result, bool) {
	entry, ok := rc.Get(path)
	if !ok || entry.Hash != hash {
		return nil, false
	}
	return entry, true
}

// Set stores a result in the cache
func (rc *ResultCache) Set(result *Result) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	result.CachedAt = time.Now()
	rc.entries[result.Path] = result
}

// Invalidate removes an entry from the cache
func (rc *ResultCache) Invalidate(path string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	delete(rc.entries, path)
}

// InvalidateAll clears the entire cache
func (rc *ResultCache) InvalidateAll() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.entries = make(map[string]*Result)
}

// Size returns the number of cached entries
func (rc *ResultCache) Size() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return len(rc.entries)
}

// Prune removes entries cached longer ago than maxAge
func (rc *ResultCache) Prune(maxAge time.Duration) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	now := time.Now()
	pruned := 0

	for path, entry := range rc.entries {
		if now.Sub(entry.CachedAt) > maxAge {
			delete(rc.entries, path)
			pruned++
		}
	}

	return pruned
}
