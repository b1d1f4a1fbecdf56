package virtual

import "testing"

func TestNewCacheAllUnmeasured(t *testing.T) {
	c := NewCache(5, 20)
	for i := 0; i < 5; i++ {
		if !c.IsUnmeasured(i) {
			t.Errorf("item %d expected unmeasured", i)
		}
		if c.GetItemSize(i) != 20 {
			t.Errorf("item %d expected default size 20, got %v", i, c.GetItemSize(i))
		}
	}
}

func TestSetItemSizeNoOpWhenUnchanged(t *testing.T) {
	c := NewCache(3, 10)
	changed, wasNew := c.SetItemSize(1, 10)
	if changed || wasNew {
		t.Errorf("expected no-op setting unmeasured item to default size, got changed=%v wasNew=%v", changed, wasNew)
	}

	changed, wasNew = c.SetItemSize(1, 15)
	if !changed || !wasNew {
		t.Fatalf("expected first real measurement to report changed+new, got changed=%v wasNew=%v", changed, wasNew)
	}

	changed, wasNew = c.SetItemSize(1, 15)
	if changed || wasNew {
		t.Errorf("expected re-setting same size to be a no-op, got changed=%v wasNew=%v", changed, wasNew)
	}

	changed, wasNew = c.SetItemSize(1, 25)
	if !changed || wasNew {
		t.Errorf("expected resize of already-measured item to report changed but not new, got changed=%v wasNew=%v", changed, wasNew)
	}
}

func TestComputeOffsetAndTotalSize(t *testing.T) {
	c := NewCache(4, 10)
	c.SetItemSize(0, 5)
	c.SetItemSize(2, 20)

	if got := c.ComputeOffset(0); got != 0 {
		t.Errorf("offset(0) = %v, want 0", got)
	}
	if got := c.ComputeOffset(1); got != 5 {
		t.Errorf("offset(1) = %v, want 5", got)
	}
	if got := c.ComputeOffset(3); got != 5+10+20 {
		t.Errorf("offset(3) = %v, want %v", got, 5+10+20)
	}
	if got := c.ComputeTotalSize(); got != 5+10+20+10 {
		t.Errorf("total = %v, want %v", got, 5+10+20+10)
	}
}

func TestComputeOffsetInvalidationOnResize(t *testing.T) {
	c := NewCache(3, 10)
	c.ComputeTotalSize()
	c.SetItemSize(0, 50)
	if got := c.ComputeOffset(1); got != 50 {
		t.Errorf("expected offset(1) to reflect resized item 0, got %v", got)
	}
}

func TestComputeRangeBasic(t *testing.T) {
	c := NewCache(10, 10)
	start, end := c.ComputeRange(25, 0, 30)
	if start != 2 {
		t.Errorf("start = %d, want 2", start)
	}
	if end != 5 {
		t.Errorf("end = %d, want 5", end)
	}
}

func TestComputeRangeEmptyCache(t *testing.T) {
	c := NewCache(0, 10)
	start, end := c.ComputeRange(0, 0, 100)
	if start != 0 || end != -1 {
		t.Errorf("expected (0, -1) for empty cache, got (%d, %d)", start, end)
	}
}

func TestUpdateLengthAppendAtEnd(t *testing.T) {
	c := NewCache(3, 10)
	c.SetItemSize(0, 15)
	shift, isRemove := c.UpdateLength(5, false)
	if isRemove {
		t.Error("expected append, not remove")
	}
	if shift != 20 {
		t.Errorf("shift = %v, want 20", shift)
	}
	if c.Length() != 5 {
		t.Errorf("length = %d, want 5", c.Length())
	}
	if c.GetItemSize(0) != 15 {
		t.Error("expected existing measurement to survive append")
	}
	if !c.IsUnmeasured(3) || !c.IsUnmeasured(4) {
		t.Error("expected new trailing items unmeasured")
	}
}

func TestUpdateLengthShiftPrepend(t *testing.T) {
	c := NewCache(3, 10)
	c.SetItemSize(0, 15) // was at index 0
	shift, isRemove := c.UpdateLength(5, true)
	if isRemove {
		t.Error("expected prepend growth, not remove")
	}
	if shift != 20 {
		t.Errorf("shift = %v, want 20", shift)
	}
	if !c.IsUnmeasured(0) || !c.IsUnmeasured(1) {
		t.Error("expected new leading items unmeasured")
	}
	if c.GetItemSize(2) != 15 {
		t.Errorf("expected old item 0 to now sit at index 2, got size %v", c.GetItemSize(2))
	}
}

func TestUpdateLengthShiftRemove(t *testing.T) {
	c := NewCache(5, 10)
	c.SetItemSize(0, 1)
	c.SetItemSize(1, 2)
	c.SetItemSize(4, 99)
	shift, isRemove := c.UpdateLength(3, true)
	if !isRemove {
		t.Error("expected remove")
	}
	if shift != 3 {
		t.Errorf("shift = %v, want 3", shift)
	}
	if c.GetItemSize(2) != 99 {
		t.Errorf("expected item previously at 4 to now be at 2, got %v", c.GetItemSize(2))
	}
}

func TestEstimateDefaultItemSize(t *testing.T) {
	c := NewCache(4, 5)
	if c.EstimateDefaultItemSize() {
		t.Error("expected no-op when nothing measured")
	}
	c.SetItemSize(0, 10)
	c.SetItemSize(1, 30)
	if !c.EstimateDefaultItemSize() {
		t.Fatal("expected estimate to apply once something is measured")
	}
	if c.DefaultSize() != 20 {
		t.Errorf("default size = %v, want 20 (average of 10 and 30)", c.DefaultSize())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := NewCache(3, 12)
	c.SetItemSize(1, 40)
	snap := c.Snapshot()

	restored := NewCacheFromSnapshot(snap)
	if restored.Length() != 3 {
		t.Errorf("length = %d, want 3", restored.Length())
	}
	if restored.DefaultSize() != 12 {
		t.Errorf("default size = %v, want 12", restored.DefaultSize())
	}
	if restored.GetItemSize(1) != 40 {
		t.Errorf("item 1 size = %v, want 40", restored.GetItemSize(1))
	}
	if !restored.IsUnmeasured(0) {
		t.Error("expected item 0 to still be unmeasured after round-trip")
	}
}
