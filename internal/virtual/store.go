package virtual

// ScrollDirection tracks whether a scroll gesture is in progress and,
// if so, which way it is moving. Idle is both the starting state and
// the state restored by a ScrollEndAction.
type ScrollDirection int

const (
	ScrollIdle ScrollDirection = iota
	ScrollForward
	ScrollBackward
)

// Store is a single-threaded reducer over Action values. It owns a
// Cache plus the scroll/viewport/jump-compensation state needed to
// answer range and offset queries, and notifies subscribers after any
// Dispatch that changes observable state.
//
// The store is deliberately not safe for concurrent use and a
// subscriber must never call Dispatch on the same store from within
// its notification callback: Dispatch is not re-entrant. Host code is
// expected to serialize all interaction through a single goroutine
// (e.g. a bubbletea Update loop), the same way the reducer it is
// modeled on expects a single dispatch thread.
type Store struct {
	cache        *Cache
	viewportSize Size
	startSpacer  Size
	endSpacer    Size
	scrollOffset Size
	reverse      bool
	autoEstimate bool

	scrollDirection ScrollDirection

	// jump is the compensation amount ready to be flushed to the host's
	// native scroll position. pendingJump accumulates compensation that
	// arrived while a gesture is in progress (scrollDirection != Idle);
	// flushing mid-gesture would fight the platform's own momentum
	// scrolling (observed on iOS WebKit), so it is folded into jump only
	// once the gesture ends.
	jump        Size
	pendingJump Size
	// flushedJump is the amount handed to FlushJump's caller, kept around
	// to recognize the scroll event that echoes back once the host
	// applies that compensation to its native scroll position.
	flushedJump Size
	jumpCount   int64
	// prepended is true for the span between a prepend length change and
	// the next ITEM_RESIZE, which widens the resize-anchor policy to
	// include every update rather than only ones above the visible range.
	prepended bool

	prevRangeStart int
	currentRange   itemRange

	smoothScrolling   bool
	smoothScrollRange itemRange

	subscribers []*subscription
}

// seedViewportSize applies InitialItemCount's estimate when no explicit
// ViewportSize was supplied, reducing first-paint churn.
func seedViewportSize(cfg StoreConfig) Size {
	if cfg.ViewportSize != 0 || cfg.InitialItemCount <= 0 {
		return cfg.ViewportSize
	}
	return Size(cfg.InitialItemCount) * cfg.DefaultItemSize
}

// NewStore builds a Store from cfg, all items unmeasured.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		cache:             NewCache(cfg.InitialLength, cfg.DefaultItemSize),
		viewportSize:      seedViewportSize(cfg),
		reverse:           cfg.Reverse,
		autoEstimate:      cfg.AutoEstimateSize,
		scrollDirection:   ScrollIdle,
		currentRange:      itemRange{Start: 0, End: -1},
		smoothScrollRange: itemRange{Start: 0, End: -1},
	}, nil
}

// NewStoreFromSnapshot builds a Store whose item sizes are seeded from
// a previously persisted CacheSnapshot, e.g. restoring a session.
func NewStoreFromSnapshot(cfg StoreConfig, snap CacheSnapshot) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		cache:             NewCacheFromSnapshot(snap),
		viewportSize:      seedViewportSize(cfg),
		reverse:           cfg.Reverse,
		autoEstimate:      cfg.AutoEstimateSize,
		scrollDirection:   ScrollIdle,
		currentRange:      itemRange{Start: 0, End: -1},
		smoothScrollRange: itemRange{Start: 0, End: -1},
	}, nil
}

// Dispatch applies an action and notifies subscribers of whatever
// changed. See the Store doc comment for the single-thread contract.
func (s *Store) Dispatch(a Action) {
	switch action := a.(type) {
	case ItemResizeAction:
		s.applyItemResize(action)
	case ViewportResizeAction:
		s.applyViewportResize(action)
	case ItemsLengthChangeAction:
		s.applyLengthChange(action)
	case ScrollAction:
		s.applyScroll(action)
	case ScrollEndAction:
		s.applyScrollEnd()
	case ManualScrollAction:
		s.applyManualScroll(action)
	case BeforeManualSmoothScrollAction:
		s.applyBeforeManualSmoothScroll(action)
	}
}

// calculateResizeJump selects the ITEM_RESIZE anchor-policy branch and
// returns the signed delta to apply as a jump for a single item whose
// size changed by delta at index, given prevMaxScroll (the store's max
// scroll offset before this measurement was written):
//   - anchored at the very start (scrollOffset == 0): never jump.
//   - anchored at the end (scrollOffset within SubpixelThreshold of
//     prevMaxScroll): only growth jumps, so shrinkage at the end never
//     pushes the user up.
//   - just prepended (s.prepended): every update jumps, since a fresh
//     prepend's deltas are assumed to lie above the visible range.
//   - otherwise: only updates for indices above the visible range (i.e.
//     before its start) jump, keeping the first visible item fixed.
func (s *Store) calculateResizeJump(index int, delta, prevMaxScroll Size) Size {
	switch {
	case s.scrollOffset == 0:
		return 0
	case s.scrollOffset > prevMaxScroll-SubpixelThreshold:
		if delta > 0 {
			return delta
		}
		return 0
	case s.prepended:
		return delta
	default:
		if index < s.currentRange.Start {
			return delta
		}
		return 0
	}
}

func (s *Store) applyItemResize(a ItemResizeAction) {
	old := s.cache.GetItemSize(a.Index)
	prevMaxScroll := s.maxScrollOffset()

	changed, wasNew := s.cache.SetItemSize(a.Index, a.Size)
	if !changed {
		return
	}

	delta := a.Size - old
	if diff := s.calculateResizeJump(a.Index, delta, prevMaxScroll); diff != 0 {
		s.scrollOffset = clamp(s.scrollOffset+diff, 0, s.maxScrollOffset())
		s.applyJump(diff)
	}

	if wasNew && s.autoEstimate && s.scrollOffset == 0 {
		s.cache.EstimateDefaultItemSize()
	}
	s.prepended = false

	s.notify(UpdateSizeState, true)
}

func (s *Store) applyViewportResize(a ViewportResizeAction) {
	if a.ViewportSize == s.viewportSize && a.PaddingStart == s.startSpacer && a.PaddingEnd == s.endSpacer {
		return
	}
	s.viewportSize = a.ViewportSize
	s.startSpacer = a.PaddingStart
	s.endSpacer = a.PaddingEnd
	s.scrollOffset = clamp(s.scrollOffset, 0, s.maxScrollOffset())
	s.notify(UpdateSizeState, true)
}

func (s *Store) applyLengthChange(a ItemsLengthChangeAction) {
	if a.ShiftItem {
		// Captured before mutating: how much room is left between the
		// current position and the end of the content.
		distanceToEnd := s.maxScrollOffset() - s.scrollOffset
		shift, isRemove := s.cache.UpdateLength(a.NewLength, true)

		delta := shift
		if isRemove {
			delta = -minSize(shift, distanceToEnd)
		}
		if delta != 0 {
			s.scrollOffset = clamp(s.scrollOffset+delta, 0, s.maxScrollOffset())
			s.applyJump(delta)
		}
		s.prepended = !isRemove
	} else {
		s.cache.UpdateLength(a.NewLength, false)
	}

	s.scrollOffset = clamp(s.scrollOffset, 0, s.maxScrollOffset())
	s.clampPrevRangeStart()

	if a.ShiftItem {
		s.notify(UpdateScrollState, true)
	} else {
		s.notify(UpdateSizeState, true)
	}
}

func (s *Store) clampPrevRangeStart() {
	if s.prevRangeStart >= s.cache.Length() {
		s.prevRangeStart = s.cache.Length() - 1
	}
	if s.prevRangeStart < 0 {
		s.prevRangeStart = 0
	}
}

// applyScroll handles a host-reported scroll position. isJustJumped
// recognizes the echo of a compensation this store itself requested
// via FlushJump: the host applied flushedJump to its native scroll
// position and is now reporting that new position back as an ordinary
// scroll event. Such an echo must not be treated as a fresh
// user-driven scroll.
func (s *Store) applyScroll(a ScrollAction) {
	next := clamp(a.ScrollOffset, 0, s.maxScrollOffset())

	flushed := s.flushedJump
	s.flushedJump = 0

	if next == s.scrollOffset {
		return
	}

	delta := next - s.scrollOffset
	distance := absSize(delta)
	isJustJumped := flushed != 0 && distance < absSize(flushed)+1

	mask := UpdateScrollState
	if !isJustJumped {
		switch {
		case delta > 0:
			s.scrollDirection = ScrollForward
		case delta < 0:
			s.scrollDirection = ScrollBackward
		}
		mask |= UpdateScrollWithEvent
	}

	shouldSync := distance > s.viewportSize
	s.scrollOffset = next
	s.notify(mask, shouldSync)
}

func (s *Store) applyScrollEnd() {
	if s.pendingJump != 0 {
		s.jump += s.pendingJump
		s.pendingJump = 0
		s.jumpCount++
	}
	s.scrollDirection = ScrollIdle
	s.smoothScrolling = false
	s.smoothScrollRange = itemRange{Start: 0, End: -1}
	s.notify(UpdateScrollState, true)
}

func (s *Store) applyManualScroll(a ManualScrollAction) {
	s.scrollOffset = clamp(a.ScrollOffset, 0, s.maxScrollOffset())
	s.notify(UpdateScrollState, true)
}

func (s *Store) applyBeforeManualSmoothScroll(a BeforeManualSmoothScrollAction) {
	if !s.smoothScrolling {
		start, end := s.cache.ComputeRange(s.scrollOffset, s.prevRangeStart, s.viewportSize)
		s.currentRange = itemRange{Start: start, End: end}
	}
	targetStart, targetEnd := s.cache.ComputeRange(a.ScrollOffset, s.currentRange.Start, s.viewportSize)
	s.smoothScrollRange = unionRange(s.currentRange, itemRange{Start: targetStart, End: targetEnd})
	s.smoothScrolling = true
	s.notify(UpdateScrollState, true)
}

// applyJump routes a size-change delta either straight to the
// ready-to-flush jump accumulator (gesture idle) or to pendingJump
// (gesture active), incrementing jumpCount only in the former case —
// the latter increments once, on fold, in applyScrollEnd.
func (s *Store) applyJump(delta Size) {
	if delta == 0 {
		return
	}
	if s.scrollDirection == ScrollIdle {
		s.jump += delta
		s.jumpCount++
	} else {
		s.pendingJump += delta
	}
}

// FlushJump returns the compensation accumulated since the last flush
// and resets it to zero. Callers apply the returned amount to their
// native scroll position and are expected to report the resulting
// position back through a ScrollAction; FlushJump records the amount so
// that echo can be recognized and suppressed.
func (s *Store) FlushJump() Size {
	j := s.jump
	s.jump = 0
	if j != 0 {
		s.flushedJump = j
	}
	return j
}

// GetJumpCount returns the number of times a jump has been applied,
// monotonically increasing for the lifetime of the store.
func (s *Store) GetJumpCount() int64 { return s.jumpCount }

// ScrollDirectionState returns whether a scroll gesture is in progress
// and which way it last moved.
func (s *Store) ScrollDirectionState() ScrollDirection { return s.scrollDirection }

// GetRange returns the inclusive [start, end] item range that should be
// mounted, widened by overscan items on each side. During an active
// smooth scroll it instead returns the union of the range visible
// before the scroll began and the range needed at its destination, so
// items already on screen are never unmounted mid-animation.
func (s *Store) GetRange(overscan int) (start, end int) {
	var r itemRange
	if s.smoothScrolling {
		r = unionRange(s.currentRange, s.smoothScrollRange)
	} else {
		rawStart, rawEnd := s.cache.ComputeRange(s.scrollOffset, s.prevRangeStart, s.viewportSize)
		r = itemRange{Start: rawStart, End: rawEnd}
		s.prevRangeStart = rawStart
		s.currentRange = r
	}
	r = applyOverscan(r, overscan, s.cache.Length())
	return r.Start, r.End
}

// GetItemOffset returns the leading-edge pixel offset of item i along
// the scroll axis. In reverse mode items are laid out from the end of
// the axis backward, padded so short content still sits flush with the
// end of the viewport rather than the start.
func (s *Store) GetItemOffset(i int) Size {
	if !s.reverse {
		return s.cache.ComputeOffset(i)
	}
	total := s.cache.ComputeTotalSize()
	pad := s.viewportSize - total
	if pad < 0 {
		pad = 0
	}
	offsetFromEnd := total - s.cache.ComputeOffset(i) - s.cache.GetItemSize(i)
	return offsetFromEnd + pad
}

func (s *Store) GetScrollOffset() Size     { return s.scrollOffset }
func (s *Store) GetViewportSize() Size     { return s.viewportSize }
func (s *Store) GetItemsLength() int       { return s.cache.Length() }
func (s *Store) GetTotalSize() Size        { return s.cache.ComputeTotalSize() }
func (s *Store) GetItemSize(i int) Size    { return s.cache.GetItemSize(i) }
func (s *Store) IsItemMeasured(i int) bool { return !s.cache.IsUnmeasured(i) }
func (s *Store) IsReverse() bool           { return s.reverse }
func (s *Store) DefaultItemSize() Size     { return s.cache.DefaultSize() }

// GetMaxScrollOffset returns the largest scrollOffset that still fits
// content against the viewport (0 if content is shorter than it).
func (s *Store) GetMaxScrollOffset() Size { return s.maxScrollOffset() }

// GetStartSpacerSize returns the non-scrollable padding at the start of
// the viewport, as last reported by a ViewportResizeAction.
func (s *Store) GetStartSpacerSize() Size { return s.startSpacer }

// GetScrollSize returns the larger of the total content size and the
// viewport extent remaining after both spacers, so a renderer sizing a
// scroll track never collapses it below one viewport's worth of space.
func (s *Store) GetScrollSize() Size {
	available := s.viewportSize - s.startSpacer - s.endSpacer
	total := s.cache.ComputeTotalSize()
	if available > total {
		return available
	}
	return total
}

// HasUnmeasuredItemsInSmoothScrollRange reports whether any item in the
// active smooth-scroll range, widened by one index on each side to
// catch a boundary item whose measurement could still shift the
// target, remains unmeasured.
func (s *Store) HasUnmeasuredItemsInSmoothScrollRange() bool {
	if s.smoothScrollRange.empty() {
		return false
	}
	return HasUnmeasuredInRange(s.cache, s.smoothScrollRange.Start-1, s.smoothScrollRange.End+1)
}

// Snapshot returns a serializable view of the store's item sizes,
// suitable for persisting and later restoring via NewStoreFromSnapshot.
func (s *Store) Snapshot() CacheSnapshot { return s.cache.Snapshot() }

func (s *Store) maxScrollOffset() Size {
	max := s.cache.ComputeTotalSize() - s.viewportSize
	if max < 0 {
		return 0
	}
	return max
}

func clamp(v, lo, hi Size) Size {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absSize(v Size) Size {
	if v < 0 {
		return -v
	}
	return v
}

func minSize(a, b Size) Size {
	if a < b {
		return a
	}
	return b
}
