package debugdraw

import (
	"go.uber.org/zap"
)

// IconHandle identifies a loaded icon. Resource is owned by the backend that
// produced it, typically a texture id.
type IconHandle struct {
	ID       string
	Resource any
	Width    int
	Height   int

	// Fallback marks the untextured handle used when an icon cannot be loaded.
	Fallback bool
}

// IconLoader resolves an icon name to a drawable handle.
type IconLoader interface {
	LoadIcon(id string) (*IconHandle, error)
}

// IconReleaser is implemented by loaders that own backend resources for the
// handles they return.
type IconReleaser interface {
	ReleaseIcon(handle *IconHandle)
}

// IconCache loads each icon at most once. Failures resolve to the fallback
// handle, which is cached so the loader is not retried.
type IconCache struct {
	loader   IconLoader
	fallback *IconHandle
	icons    map[string]*IconHandle
	log      *zap.Logger
}

// NewIconCache creates a cache. A nil fallback is replaced with an untextured handle.
func NewIconCache(loader IconLoader, fallback *IconHandle) *IconCache {
	if fallback == nil {
		fallback = &IconHandle{ID: "fallback", Width: 1, Height: 1, Fallback: true}
	}
	return &IconCache{
		loader:   loader,
		fallback: fallback,
		icons:    make(map[string]*IconHandle),
		log:      zap.NewNop(),
	}
}

// SetLogger sets the logger used for load warnings.
func (c *IconCache) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
}

// Fallback returns the handle used for icons that fail to load.
func (c *IconCache) Fallback() *IconHandle { return c.fallback }

// GetOrLoad returns the cached handle for id, loading it on first use.
func (c *IconCache) GetOrLoad(id string) *IconHandle {
	if h, ok := c.icons[id]; ok {
		return h
	}

	if c.loader == nil {
		c.icons[id] = c.fallback
		return c.fallback
	}

	h, err := c.loader.LoadIcon(id)
	if err != nil || h == nil {
		c.log.Warn("icon not found, using fallback", zap.String("icon", id), zap.Error(err))
		h = c.fallback
	} else {
		c.log.Debug("icon loaded", zap.String("icon", id), zap.Int("width", h.Width), zap.Int("height", h.Height))
	}
	c.icons[id] = h
	return h
}

// Forget evicts id so the next GetOrLoad reloads it.
func (c *IconCache) Forget(id string) {
	h, ok := c.icons[id]
	if !ok {
		return
	}
	delete(c.icons, id)
	c.release(h)
}

// Clear evicts every icon.
func (c *IconCache) Clear() {
	for _, h := range c.icons {
		c.release(h)
	}
	clear(c.icons)
}

// Len returns the number of cached icons, fallbacks included.
func (c *IconCache) Len() int { return len(c.icons) }

func (c *IconCache) release(h *IconHandle) {
	if h == c.fallback {
		return
	}
	if r, ok := c.loader.(IconReleaser); ok {
		r.ReleaseIcon(h)
	}
}
