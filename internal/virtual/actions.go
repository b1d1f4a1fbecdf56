package virtual

// Action is dispatched to a Store to advance its state, mirroring the
// tagged-message pattern bubbletea uses for tea.Msg: each concrete type
// below is handled by exactly one branch of Store.Dispatch.
type Action interface {
	action()
}

// ItemResizeAction reports a layout measurement for a single item,
// typically emitted once that item's row has been rendered and its
// real extent is known.
type ItemResizeAction struct {
	Index int
	Size  Size
}

// ViewportResizeAction reports a change in the visible viewport extent,
// e.g. after a terminal resize. ViewportSize is the total extent along
// the scroll axis including both spacers; PaddingStart/PaddingEnd are
// the non-scrollable paddings inside it (e.g. container padding).
type ViewportResizeAction struct {
	ViewportSize Size
	PaddingStart Size
	PaddingEnd   Size
}

// ItemsLengthChangeAction reports that the underlying item count
// changed. ShiftItem, when true, means the change happened at the
// start of the index space (a prepend or a shift-remove) rather than
// at the end (an append or a pop).
type ItemsLengthChangeAction struct {
	NewLength int
	ShiftItem bool
}

// ScrollAction reports a scroll-position update driven by the host
// surface (e.g. a terminal scroll event or a native scroll callback).
// OffsetIdentifier lets callers correlate this action with the event
// that produced it; the store does not read it, and echo suppression
// relies on flushedJump and the scroll distance alone.
type ScrollAction struct {
	ScrollOffset     Size
	OffsetIdentifier int64
}

// ScrollEndAction marks the end of an active scroll gesture (momentum
// settled, drag released). It is the point at which any pendingJump
// accumulated during the gesture folds into jump.
type ScrollEndAction struct{}

// ManualScrollAction requests an immediate, caller-initiated jump to
// ScrollOffset (e.g. "scroll to index" outside of user gesture input).
type ManualScrollAction struct {
	ScrollOffset Size
}

// BeforeManualSmoothScrollAction announces an upcoming smooth,
// animated scroll to ScrollOffset so the store can union the range
// needed at departure and arrival, keeping items mounted for the
// duration of the animation.
type BeforeManualSmoothScrollAction struct {
	ScrollOffset Size
}

func (ItemResizeAction) action()               {}
func (ViewportResizeAction) action()           {}
func (ItemsLengthChangeAction) action()        {}
func (ScrollAction) action()                   {}
func (ScrollEndAction) action()                {}
func (ManualScrollAction) action()             {}
func (BeforeManualSmoothScrollAction) action() {}
