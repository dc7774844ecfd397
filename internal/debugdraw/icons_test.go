package debugdraw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingLoader struct {
	loads    map[string]int
	released []string
	missing  map[string]bool
}

func newCountingLoader(missing ...string) *countingLoader {
	l := &countingLoader{loads: make(map[string]int), missing: make(map[string]bool)}
	for _, id := range missing {
		l.missing[id] = true
	}
	return l
}

func (l *countingLoader) LoadIcon(id string) (*IconHandle, error) {
	l.loads[id]++
	if l.missing[id] {
		return nil, errors.New("no such icon")
	}
	return &IconHandle{ID: id, Resource: l.loads[id], Width: 16, Height: 16}, nil
}

func (l *countingLoader) ReleaseIcon(h *IconHandle) {
	l.released = append(l.released, h.ID)
}

func TestIconCacheLoadsOnce(t *testing.T) {
	loader := newCountingLoader()
	cache := NewIconCache(loader, nil)

	first := cache.GetOrLoad("flag.png")
	second := cache.GetOrLoad("flag.png")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.loads["flag.png"])
	assert.False(t, first.Fallback)
}

func TestIconCacheFallbackWarnsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	loader := newCountingLoader("missing.png")
	cache := NewIconCache(loader, nil)
	cache.SetLogger(zap.New(core))

	h1 := cache.GetOrLoad("missing.png")
	h2 := cache.GetOrLoad("missing.png")

	assert.Same(t, cache.Fallback(), h1)
	assert.Same(t, h1, h2)
	assert.True(t, h1.Fallback)
	assert.Equal(t, 1, loader.loads["missing.png"])
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "missing.png", logs.All()[0].ContextMap()["icon"])
}

func TestIconCacheCustomFallback(t *testing.T) {
	fallback := &IconHandle{ID: "white", Fallback: true}
	cache := NewIconCache(newCountingLoader("x"), fallback)
	assert.Same(t, fallback, cache.GetOrLoad("x"))
}

func TestIconCacheNilLoader(t *testing.T) {
	cache := NewIconCache(nil, nil)
	assert.Same(t, cache.Fallback(), cache.GetOrLoad("anything"))
	cache.Forget("anything")
	cache.Clear()
}

func TestIconCacheForgetReloads(t *testing.T) {
	loader := newCountingLoader("gone.png")
	cache := NewIconCache(loader, nil)

	h1 := cache.GetOrLoad("a.png")
	cache.GetOrLoad("gone.png")
	cache.Forget("a.png")
	cache.Forget("gone.png")
	cache.Forget("never-loaded.png")

	h2 := cache.GetOrLoad("a.png")
	assert.NotSame(t, h1, h2)
	assert.Equal(t, 2, loader.loads["a.png"])
	assert.Equal(t, []string{"a.png"}, loader.released, "fallback is never released")
}

func TestIconCacheClear(t *testing.T) {
	loader := newCountingLoader()
	cache := NewIconCache(loader, nil)
	cache.GetOrLoad("a")
	cache.GetOrLoad("b")
	require.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, loader.released)
}
