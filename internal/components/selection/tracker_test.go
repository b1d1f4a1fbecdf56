package selection

import "testing"

func TestTrackerMoveSelectionClamps(t *testing.T) {
	tr := New()
	tr.SetIdentities(map[int]*ItemIdentity{
		0: {Key: "a"}, 1: {Key: "b"}, 2: {Key: "c"},
	})

	if row := tr.MoveSelection(1, 3); row != 1 {
		t.Errorf("expected row 1, got %d", row)
	}
	if row := tr.MoveSelection(-5, 3); row != 0 {
		t.Errorf("expected clamp to 0, got %d", row)
	}
	if row := tr.MoveSelection(50, 3); row != 2 {
		t.Errorf("expected clamp to 2, got %d", row)
	}
	if row := tr.MoveSelection(1, 0); row != 0 {
		t.Errorf("expected 0 rows to select row 0, got %d", row)
	}
}

func TestTrackerRestoreSelectionFollowsIdentityAcrossPrepend(t *testing.T) {
	tr := New()
	tr.SetIdentities(map[int]*ItemIdentity{
		0: {Key: "a"}, 1: {Key: "b"}, 2: {Key: "c"},
	})
	tr.UpdateSelection(1) // selected "b"

	// Simulate a prepend of 10 items: every surviving identity shifts by +10.
	shifted := make(map[int]*ItemIdentity, 13)
	for row, id := range map[int]*ItemIdentity{0: {Key: "a"}, 1: {Key: "b"}, 2: {Key: "c"}} {
		shifted[row+10] = id
	}
	tr.SetIdentities(shifted)

	row := tr.RestoreSelection(13)
	if row != 11 {
		t.Errorf("expected selection to follow identity \"b\" to row 11, got %d", row)
	}
}

func TestTrackerRestoreSelectionFallsBackWhenIdentityGone(t *testing.T) {
	tr := New()
	tr.SetIdentities(map[int]*ItemIdentity{0: {Key: "a"}, 1: {Key: "b"}})
	tr.UpdateSelection(1)

	tr.SetIdentities(map[int]*ItemIdentity{0: {Key: "x"}})
	row := tr.RestoreSelection(1)
	if row != 0 {
		t.Errorf("expected clamp fallback to row 0, got %d", row)
	}
}

func TestTrackerClear(t *testing.T) {
	tr := New()
	tr.SetIdentities(map[int]*ItemIdentity{0: {Key: "a"}})
	tr.UpdateSelection(0)
	if !tr.HasSelection() {
		t.Fatal("expected selection after UpdateSelection")
	}
	tr.Clear()
	if tr.HasSelection() {
		t.Error("expected no selection after Clear")
	}
	if tr.SelectedRow() != 0 {
		t.Error("expected selected row reset to 0")
	}
}
