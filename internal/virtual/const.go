// Package virtual implements the windowing core of a list/scroll
// virtualization engine: a per-item size cache with prefix-sum offset
// lookups, a range computation over that cache, and a reducer-style
// virtual store that arbitrates scroll, resize, and length-change events
// and drives scroll-position jump compensation.
package virtual

// Size is a measured or estimated extent along the scroll axis. It is a
// float so sub-pixel scroll positions (devicePixelRatio-scaled offsets)
// round-trip without the rounding error an integer type would introduce.
type Size = float64

// Uncached marks an item size or prefix-sum offset that has not been
// measured or computed yet. It is distinct from any valid non-negative
// size, including zero-size items.
const Uncached Size = -1

// SubpixelThreshold lets a scroll offset within this many units of the
// max scroll offset count as anchored at the end when an ITEM_RESIZE
// picks its anchor, despite devicePixelRatio rounding.
const SubpixelThreshold Size = 1.5
