package virtual

// itemRange is an inclusive [Start, End] index range. An empty range is
// represented as End < Start.
type itemRange struct {
	Start int
	End   int
}

func (r itemRange) empty() bool { return r.End < r.Start }

// HasUnmeasuredInRange reports whether any item in the inclusive
// [start, end] range has not yet been measured. Callers use this to
// decide whether a render pass must request layout measurements before
// the range's offsets can be trusted.
func HasUnmeasuredInRange(c *Cache, start, end int) bool {
	if start > end {
		return false
	}
	if start < 0 {
		start = 0
	}
	if end >= c.Length() {
		end = c.Length() - 1
	}
	for i := start; i <= end; i++ {
		if c.IsUnmeasured(i) {
			return true
		}
	}
	return false
}

// applyOverscan widens r by overscan items on each side, clamping to
// [0, length-1]. overscan is supplied by the caller per render and is
// never stored on the cache or the store.
func applyOverscan(r itemRange, overscan, length int) itemRange {
	if r.empty() || length == 0 {
		return r
	}
	r.Start -= overscan
	r.End += overscan
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > length-1 {
		r.End = length - 1
	}
	return r
}

// unionRange returns the smallest range covering both a and b. An empty
// operand is ignored; if both are empty the result is empty.
func unionRange(a, b itemRange) itemRange {
	if a.empty() {
		return b
	}
	if b.empty() {
		return a
	}
	r := itemRange{Start: a.Start, End: a.End}
	if b.Start < r.Start {
		r.Start = b.Start
	}
	if b.End > r.End {
		r.End = b.End
	}
	return r
}
