package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
)

func TestResultCache_SetAndGet(t *testing.T) {
	cache := NewResultCache()

	cache.Set(&Result{
		Path:    "/test/colors.enum",
		Hash:    "abc123",
		Program: &ast.Program{Package: "colors"},
		Output:  []byte("package colors\n"),
	})

	cached, ok := cache.Get("/test/colors.enum")
	require.True(t, ok)
	assert.Equal(t, "abc123", cached.Hash)
	assert.Equal(t, "colors", cached.Program.Package)
	assert.False(t, cached.CachedAt.IsZero())
	assert.Equal(t, 1, cache.Size())
}

func TestResultCache_Lookup(t *testing.T) {
	cache := NewResultCache()
	cache.Set(&Result{Path: "a.enum", Hash: "h1"})

	_, ok := cache.Lookup("a.enum", "h1")
	assert.True(t, ok)

	_, ok = cache.Lookup("a.enum", "h2")
	assert.False(t, ok, "a changed hash must miss")

	_, ok = cache.Lookup("b.enum", "h1")
	assert.False(t, ok)
}

func TestResultCache_Invalidate(t *testing.T) {
	cache := NewResultCache()
	cache.Set(&Result{Path: "a.enum"})
	cache.Set(&Result{Path: "b.enum"})

	cache.Invalidate("a.enum")
	_, ok := cache.Get("a.enum")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Size())

	cache.InvalidateAll()
	assert.Equal(t, 0, cache.Size())
}

func TestResultCache_Prune(t *testing.T) {
	cache := NewResultCache()
	cache.Set(&Result{Path: "old.enum"})
	cache.Set(&Result{Path: "new.enum"})

	old, _ := cache.Get("old.enum")
	old.CachedAt = time.Now().Add(-time.Hour)

	assert.Equal(t, 1, cache.Prune(time.Minute))
	_, ok := cache.Get("new.enum")
	assert.True(t, ok)
}

func TestResultCache_Concurrent(t *testing.T) {
	cache := NewResultCache()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := string(rune('a'+i)) + ".enum"
			cache.Set(&Result{Path: path})
			cache.Get(path)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, cache.Size())
}
