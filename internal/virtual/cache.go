package virtual

// Cache holds per-item sizes for a mutable-length index space, plus a
// lazily-computed, lazily-invalidated prefix sum used to answer offset
// queries in amortized O(1) for the common forward/backward scroll
// access pattern. It is the single owner of measurement state; callers
// mutate it only through the methods below, never through exported
// fields (there are none).
type Cache struct {
	sizes       []Size
	offsets     []Size // offsets[i] = sum of effective sizes of items [0, i); len == length+1
	defaultSize Size
	length      int
}

// NewCache builds a cache for length items, all unmeasured, falling back
// to defaultSize for every offset/layout computation until measured.
func NewCache(length int, defaultSize Size) *Cache {
	if length < 0 {
		length = 0
	}
	c := &Cache{defaultSize: defaultSize}
	c.reset(length)
	return c
}

func (c *Cache) reset(length int) {
	c.length = length
	c.sizes = make([]Size, length)
	for i := range c.sizes {
		c.sizes[i] = Uncached
	}
	c.offsets = make([]Size, length+1)
	c.offsets[0] = 0
	for i := 1; i <= length; i++ {
		c.offsets[i] = Uncached
	}
}

// Length returns the current item count.
func (c *Cache) Length() int { return c.length }

// DefaultSize returns the size attributed to unmeasured items.
func (c *Cache) DefaultSize() Size { return c.defaultSize }

// GetItemSize returns the measured size of item i, or the default size
// if it has not been measured (or i is out of range).
func (c *Cache) GetItemSize(i int) Size {
	if i < 0 || i >= c.length {
		return c.defaultSize
	}
	if c.sizes[i] == Uncached {
		return c.defaultSize
	}
	return c.sizes[i]
}

// IsUnmeasured reports whether item i has never been measured.
func (c *Cache) IsUnmeasured(i int) bool {
	if i < 0 || i >= c.length {
		return true
	}
	return c.sizes[i] == Uncached
}

func (c *Cache) effectiveSizeAt(i int) Size {
	s := c.sizes[i]
	if s == Uncached {
		return c.defaultSize
	}
	return s
}

// SetItemSize records a layout measurement for item i. It is a no-op
// (changed == false) when size equals the item's current effective
// size, matching the "resize to same size" edge case. wasNewMeasurement
// reports whether the slot was previously unmeasured; it is only
// meaningful when changed is true.
func (c *Cache) SetItemSize(i int, size Size) (changed, wasNewMeasurement bool) {
	if i < 0 || i >= c.length {
		return false, false
	}

	current := c.sizes[i]
	effectiveCurrent := current
	if effectiveCurrent == Uncached {
		effectiveCurrent = c.defaultSize
	}
	if effectiveCurrent == size {
		return false, false
	}

	wasNewMeasurement = current == Uncached
	c.sizes[i] = size
	for j := i + 1; j < len(c.offsets); j++ {
		c.offsets[j] = Uncached
	}
	return true, wasNewMeasurement
}

// ComputeOffset returns the prefix sum of effective sizes for items
// [0, i), computing and caching any missing intermediate prefixes by
// walking forward from the nearest cached one below i.
func (c *Cache) ComputeOffset(i int) Size {
	if i < 0 {
		i = 0
	}
	if i > c.length {
		i = c.length
	}
	if c.offsets[i] != Uncached {
		return c.offsets[i]
	}

	j := i - 1
	for j > 0 && c.offsets[j] == Uncached {
		j--
	}
	sum := c.offsets[j]
	for j < i {
		sum += c.effectiveSizeAt(j)
		j++
		c.offsets[j] = sum
	}
	return c.offsets[i]
}

// ComputeTotalSize is ComputeOffset(Length()).
func (c *Cache) ComputeTotalSize() Size {
	return c.ComputeOffset(c.length)
}

// ComputeRange returns the inclusive [start, end] index range whose
// effective offsets intersect [scrollOffset, scrollOffset+viewportSize).
// prevStart seeds the search so repeated calls during a monotone scroll
// are amortized O(visible count) instead of a fresh binary search each
// time. An empty cache returns (0, -1).
func (c *Cache) ComputeRange(scrollOffset Size, prevStart int, viewportSize Size) (start, end int) {
	if c.length == 0 {
		return 0, -1
	}

	start = prevStart
	if start < 0 {
		start = 0
	}
	if start >= c.length {
		start = c.length - 1
	}

	for start > 0 && c.ComputeOffset(start) > scrollOffset {
		start--
	}
	for start < c.length-1 && c.ComputeOffset(start+1) <= scrollOffset {
		start++
	}

	end = start
	limit := scrollOffset + viewportSize
	for end < c.length-1 && c.ComputeOffset(end+1) < limit {
		end++
	}
	return start, end
}

// UpdateLength applies a length change. When isShift is true the delta
// is applied at the start of the index space (prepend when growing,
// shift-remove when shrinking); otherwise it is applied at the end
// (append/pop). shift is the total effective size the added or removed
// items contributed, using measured sizes where known and the default
// size otherwise; isRemove reports whether newLength < the
// previous length.
func (c *Cache) UpdateLength(newLength int, isShift bool) (shift Size, isRemove bool) {
	oldLength := c.length
	isRemove = newLength < oldLength
	if newLength == oldLength {
		return 0, false
	}

	if isShift {
		if isRemove {
			removeCount := oldLength - newLength
			for i := 0; i < removeCount; i++ {
				shift += c.effectiveSizeAt(i)
			}
			c.sizes = append([]Size(nil), c.sizes[removeCount:]...)
		} else {
			addCount := newLength - oldLength
			shift = Size(addCount) * c.defaultSize
			next := make([]Size, newLength)
			for i := 0; i < addCount; i++ {
				next[i] = Uncached
			}
			copy(next[addCount:], c.sizes)
			c.sizes = next
		}
		c.length = newLength
		c.offsets = make([]Size, newLength+1)
		c.offsets[0] = 0
		for i := 1; i <= newLength; i++ {
			c.offsets[i] = Uncached
		}
		return shift, isRemove
	}

	if isRemove {
		for i := newLength; i < oldLength; i++ {
			shift += c.effectiveSizeAt(i)
		}
		c.sizes = c.sizes[:newLength]
		c.offsets = append([]Size(nil), c.offsets[:newLength+1]...)
	} else {
		addCount := newLength - oldLength
		shift = Size(addCount) * c.defaultSize
		c.sizes = append(c.sizes, make([]Size, addCount)...)
		for i := oldLength; i < newLength; i++ {
			c.sizes[i] = Uncached
		}
		next := make([]Size, newLength+1)
		copy(next, c.offsets)
		for i := oldLength + 1; i <= newLength; i++ {
			next[i] = Uncached
		}
		c.offsets = next
	}
	c.length = newLength
	return shift, isRemove
}

// EstimateDefaultItemSize replaces defaultSize with the average of
// already-measured sizes and invalidates every cached prefix sum. It
// reports false (and changes nothing) if no item has been measured yet.
func (c *Cache) EstimateDefaultItemSize() bool {
	var sum Size
	var count int
	for _, s := range c.sizes {
		if s != Uncached {
			sum += s
			count++
		}
	}
	if count == 0 {
		return false
	}
	c.defaultSize = sum / Size(count)
	for i := 1; i < len(c.offsets); i++ {
		c.offsets[i] = Uncached
	}
	return true
}

// CacheSnapshot is the persisted, serializable form of a Cache: sizes
// and offsets with Uncached encoded as the sentinel, plus defaultSize
// and length. Producers must not rely on offsets; consumers may ignore
// them and let ComputeOffset recompute lazily.
type CacheSnapshot struct {
	Sizes       []Size `json:"sizes"`
	Offsets     []Size `json:"offsets"`
	DefaultSize Size   `json:"defaultSize"`
	Length      int    `json:"length"`
}

// Snapshot returns a deep-copied, serializable view of the cache.
func (c *Cache) Snapshot() CacheSnapshot {
	sizes := append([]Size(nil), c.sizes...)
	offsets := make([]Size, c.length)
	for i := 0; i < c.length; i++ {
		offsets[i] = c.offsets[i]
	}
	return CacheSnapshot{
		Sizes:       sizes,
		Offsets:     offsets,
		DefaultSize: c.defaultSize,
		Length:      c.length,
	}
}

// NewCacheFromSnapshot rebuilds a cache from a persisted snapshot. A
// snapshot whose Sizes slice is shorter than Length is treated as
// authoritative: missing trailing entries are Uncached.
func NewCacheFromSnapshot(snap CacheSnapshot) *Cache {
	length := snap.Length
	if length < 0 {
		length = 0
	}
	c := &Cache{defaultSize: snap.DefaultSize}
	c.reset(length)
	for i := 0; i < length && i < len(snap.Sizes); i++ {
		c.sizes[i] = snap.Sizes[i]
	}
	return c
}
