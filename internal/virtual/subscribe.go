package virtual

// UpdateMask flags which part of a Store's state changed, so a
// subscriber can skip recomputing work it doesn't care about.
type UpdateMask uint8

const (
	// UpdateScrollState marks a change to the scroll offset.
	UpdateScrollState UpdateMask = 1 << iota
	// UpdateSizeState marks a change to item sizes, item count, or the
	// viewport extent — anything that can move offsets around.
	UpdateSizeState
	// UpdateScrollWithEvent marks a scroll update that originated from
	// a ScrollAction (as opposed to ManualScroll, ScrollEnd, or a
	// length/resize side effect), letting a subscriber distinguish
	// user-driven scroll from programmatic repositioning.
	UpdateScrollWithEvent
)

// Has reports whether mask contains every flag in want.
func (mask UpdateMask) Has(want UpdateMask) bool {
	return mask&want == want
}

// Subscriber is notified after a Dispatch that changed state matching
// its mask. sync is a rendering hint, not a threading guarantee (every
// Dispatch is already synchronous): true means the change is large
// enough that the renderer should flush immediately rather than batch,
// so the user never sees a blank frame — e.g. a scroll whose distance
// exceeds the viewport extent.
type Subscriber func(mask UpdateMask, sync bool)

type subscription struct {
	mask UpdateMask
	fn   Subscriber
}

// Subscribe registers fn to be called after any Dispatch whose change
// mask intersects watch. It returns an unsubscribe function.
//
// The store is single-threaded and not re-entrant: fn must not call
// Dispatch on the same store from within the notification.
func (s *Store) Subscribe(watch UpdateMask, fn Subscriber) (unsubscribe func()) {
	sub := &subscription{mask: watch, fn: fn}
	s.subscribers = append(s.subscribers, sub)
	return func() {
		for i, existing := range s.subscribers {
			if existing == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(changed UpdateMask, sync bool) {
	if changed == 0 {
		return
	}
	for _, sub := range s.subscribers {
		if sub.mask&changed != 0 {
			sub.fn(changed, sync)
		}
	}
}
