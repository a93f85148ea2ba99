package cache

import (
	"testing"
	"time"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetPutRoundTrip(t *testing.T) {
	m := NewMemory(0)
	hash := HashSource([]byte("void f();"))

	_, ok := m.Get(hash)
	assert.False(t, ok)

	tree := &dom.HeaderFileSet{}
	m.Put(hash, tree)

	got, ok := m.Get(hash)
	require.True(t, ok)
	assert.Same(t, tree, got)

	stats := m.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}

func TestMemoryExpiresEntries(t *testing.T) {
	m := NewMemory(time.Millisecond)
	hash := HashSource([]byte("void g();"))
	m.Put(hash, &dom.HeaderFileSet{})

	time.Sleep(5 * time.Millisecond)

	_, ok := m.Get(hash)
	assert.False(t, ok, "expected entry to have expired")
	assert.Equal(t, int64(1), m.Stats()["evictions"])
}

func TestHashSourceIsStableAndContentSensitive(t *testing.T) {
	a := HashSource([]byte("same"))
	b := HashSource([]byte("same"))
	c := HashSource([]byte("different"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
