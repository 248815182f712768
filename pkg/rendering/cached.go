package rendering

// CachedRenderingData is the per-item cache slot consumed by the
// backend. Every renderable item embeds exactly one.
//
// The validity flag starts false at item construction. The backend is
// the only writer: it stores a cache index after materializing a
// low-level primitive. The property-binding system invalidates the slot
// when a property affecting the primitive changes. The runtime itself
// never interprets the index.
type CachedRenderingData struct {
	cacheIndex int
	cacheOK    bool
	allocated  bool
}

// Valid reports whether the cache index may be trusted. When false the
// backend must recompute and store a fresh low-level primitive before
// reading the index.
func (c *CachedRenderingData) Valid() bool {
	return c.cacheOK
}

// CacheIndex returns the backend-defined cache index. Reading it
// without checking Valid first is a contract violation.
func (c *CachedRenderingData) CacheIndex() int {
	return c.cacheIndex
}

// SetCacheIndex stores a backend-defined index and marks the slot
// valid. Called by the backend only, after materializing.
func (c *CachedRenderingData) SetCacheIndex(index int) {
	c.cacheIndex = index
	c.cacheOK = true
	c.allocated = true
}

// hasSlot reports whether an index was ever stored, valid or not. An
// invalidated slot still owns its cache entry until the backend rebuilds
// or frees it.
func (c *CachedRenderingData) hasSlot() bool {
	return c.allocated
}

// Invalidate marks the slot stale. Called by the binding system when a
// property change affects the item's primitive.
func (c *CachedRenderingData) Invalidate() {
	c.cacheOK = false
}
