// Package selection tracks which rendered row index in a virtualized list
// is "selected" by the demo UI and lets that selection survive an
// ITEMS_LENGTH_CHANGE (prepend/append) that shifts every index below it.
package selection

import "sync"

// ItemIdentity uniquely identifies an item independent of its current
// index in the virtualized sequence, so a selection can be re-anchored
// after a prepend shifts indices out from under it.
type ItemIdentity struct {
	Key string // caller-supplied stable key (e.g. a UUID or content hash)
}

// Tracker remembers the currently selected index plus the identity that
// was selected, so RestoreSelection can re-anchor after the list shifts.
type Tracker struct {
	mu            sync.RWMutex
	selectedRow   int
	selectedKey   *ItemIdentity
	identityByRow map[int]*ItemIdentity
}

// New creates a new selection tracker.
func New() *Tracker {
	return &Tracker{
		identityByRow: make(map[int]*ItemIdentity),
	}
}

// SetIdentities replaces the row -> identity mapping for the current render.
func (t *Tracker) SetIdentities(identities map[int]*ItemIdentity) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.identityByRow = make(map[int]*ItemIdentity, len(identities))
	for row, id := range identities {
		if id != nil {
			t.identityByRow[row] = &ItemIdentity{Key: id.Key}
		}
	}
}

// UpdateSelection moves the selected row and remembers its identity.
func (t *Tracker) UpdateSelection(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.selectedRow = row
	if id, ok := t.identityByRow[row]; ok {
		t.selectedKey = id
	}
}

// MoveSelection moves the selection by delta, clamped to [0, totalRows).
func (t *Tracker) MoveSelection(delta, totalRows int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if totalRows == 0 {
		t.selectedRow = 0
		return 0
	}

	next := t.selectedRow + delta
	if next < 0 {
		next = 0
	} else if next >= totalRows {
		next = totalRows - 1
	}
	t.selectedRow = next
	if id, ok := t.identityByRow[next]; ok {
		t.selectedKey = id
	}
	return next
}

// SelectedRow returns the currently selected row index.
func (t *Tracker) SelectedRow() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selectedRow
}

// RestoreSelection re-anchors the selection to the row now holding the
// previously-selected identity, after a length change moved everything
// (e.g. a prepend shifted every surviving item's index up by N). If the
// identity can no longer be found, the row index is clamped into range
// instead, mirroring how a resource tracker falls back to "stay close"
// when an exact match disappears.
func (t *Tracker) RestoreSelection(totalRows int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if totalRows <= 0 {
		t.selectedRow = 0
		return 0
	}

	if t.selectedKey != nil {
		for row, id := range t.identityByRow {
			if id != nil && id.Key == t.selectedKey.Key {
				t.selectedRow = row
				return row
			}
		}
	}

	if t.selectedRow >= totalRows {
		t.selectedRow = totalRows - 1
	}
	if t.selectedRow < 0 {
		t.selectedRow = 0
	}
	if id, ok := t.identityByRow[t.selectedRow]; ok {
		t.selectedKey = id
	}
	return t.selectedRow
}

// Clear resets all tracked selection state.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.selectedRow = 0
	t.selectedKey = nil
	t.identityByRow = make(map[int]*ItemIdentity)
}

// HasSelection reports whether an identity has been recorded yet.
func (t *Tracker) HasSelection() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selectedKey != nil
}
