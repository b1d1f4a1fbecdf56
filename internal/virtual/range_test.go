package virtual

import "testing"

func TestHasUnmeasuredInRange(t *testing.T) {
	c := NewCache(5, 5)
	c.SetItemSize(0, 10)
	c.SetItemSize(1, 10)
	c.SetItemSize(2, 10)

	if HasUnmeasuredInRange(c, 0, 2) {
		t.Error("expected fully-measured sub-range to report false")
	}
	if !HasUnmeasuredInRange(c, 0, 3) {
		t.Error("expected range touching item 3 to report true")
	}
}

func TestApplyOverscanClamps(t *testing.T) {
	r := applyOverscan(itemRange{Start: 2, End: 4}, 5, 10)
	if r.Start != 0 || r.End != 9 {
		t.Errorf("got (%d, %d), want (0, 9)", r.Start, r.End)
	}
}

func TestApplyOverscanEmptyRangeUnaffected(t *testing.T) {
	r := applyOverscan(itemRange{Start: 0, End: -1}, 5, 10)
	if !r.empty() {
		t.Error("expected empty range to remain empty")
	}
}

func TestUnionRange(t *testing.T) {
	got := unionRange(itemRange{Start: 2, End: 5}, itemRange{Start: 4, End: 9})
	if got.Start != 2 || got.End != 9 {
		t.Errorf("got (%d, %d), want (2, 9)", got.Start, got.End)
	}
}

func TestUnionRangeWithEmptyOperand(t *testing.T) {
	a := itemRange{Start: 0, End: -1}
	b := itemRange{Start: 3, End: 6}
	if got := unionRange(a, b); got != b {
		t.Errorf("got %+v, want %+v", got, b)
	}
	if got := unionRange(b, a); got != b {
		t.Errorf("got %+v, want %+v", got, b)
	}
}
