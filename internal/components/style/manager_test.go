package style

import "testing"

func TestManagerThemeSwapClearsCache(t *testing.T) {
	m := NewManager()
	_ = m.RowCell(10, false)
	if len(m.cache) == 0 {
		t.Fatal("expected RowCell to populate the cache")
	}

	m.SetTheme(GetLightTheme())
	if len(m.cache) != 0 {
		t.Error("expected SetTheme to clear the cache")
	}
	if m.GetTheme().Name != "light" {
		t.Errorf("expected light theme active, got %q", m.GetTheme().Name)
	}
}

func TestJumpIndicatorThresholds(t *testing.T) {
	m := NewManager()
	low := m.JumpIndicator(1, 100)
	high := m.JumpIndicator(90, 100)
	if low.GetForeground() == high.GetForeground() {
		t.Error("expected small and large jumps to render with different colors")
	}
}
