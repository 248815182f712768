package rendering

// Cache is a slot store for backend low-level rendering primitives,
// addressed by the indices kept in CachedRenderingData. Freed slots are
// reused before the store grows.
//
// The cache belongs to the backend; there is one logical thread of
// execution, so no locking is required.
type Cache[T any] struct {
	entries  []T
	occupied []bool
	freeList []int
}

// Allocate stores a value and returns its slot index.
func (c *Cache[T]) Allocate(value T) int {
	if n := len(c.freeList); n > 0 {
		index := c.freeList[n-1]
		c.freeList = c.freeList[:n-1]
		c.entries[index] = value
		c.occupied[index] = true
		return index
	}
	c.entries = append(c.entries, value)
	c.occupied = append(c.occupied, true)
	return len(c.entries) - 1
}

// EntryAt returns the value stored at index. The index must come from a
// valid CachedRenderingData slot.
func (c *Cache[T]) EntryAt(index int) T {
	return c.entries[index]
}

// Replace overwrites the value at an occupied slot.
func (c *Cache[T]) Replace(index int, value T) {
	c.entries[index] = value
}

// Free releases a slot for reuse.
func (c *Cache[T]) Free(index int) {
	if index < 0 || index >= len(c.entries) || !c.occupied[index] {
		return
	}
	var zero T
	c.entries[index] = zero
	c.occupied[index] = false
	c.freeList = append(c.freeList, index)
}

// Len returns the number of occupied slots.
func (c *Cache[T]) Len() int {
	count := 0
	for _, used := range c.occupied {
		if used {
			count++
		}
	}
	return count
}

// EnsureCached returns the cached low-level primitive for an item's
// slot, materializing it with build when the slot is invalid. This is
// the backend's single entry point for the cache contract: the index is
// read only behind a validity check.
func EnsureCached[T any](data *CachedRenderingData, cache *Cache[T], build func() T) T {
	if data.Valid() {
		return cache.EntryAt(data.CacheIndex())
	}
	value := build()
	if data.hasSlot() {
		// An invalidated item still owns its slot; rebuild in place
		// instead of leaking it.
		cache.Replace(data.CacheIndex(), value)
		data.SetCacheIndex(data.CacheIndex())
		return value
	}
	data.SetCacheIndex(cache.Allocate(value))
	return value
}
