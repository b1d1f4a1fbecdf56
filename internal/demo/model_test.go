package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(NewLogger(false), 200, 1, 2, false, "")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestModelRendersRowsAfterWindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	out := m.View()
	if !strings.Contains(out, "Row 0") {
		t.Errorf("expected first row to be visible, got:\n%s", out)
	}
	if strings.Contains(out, "initializing") {
		t.Error("expected model to be ready after a WindowSizeMsg")
	}
}

func TestModelScrollMovesVisibleRange(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	for i := 0; i < 50; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	out := m.View()
	if strings.Contains(out, "Row 0 ") {
		t.Error("expected row 0 to have scrolled out of view")
	}
}

func TestModelAppendGrowsLengthWithoutJump(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	before := m.store.GetItemsLength()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	if m.store.GetItemsLength() != before+10 {
		t.Errorf("length = %d, want %d", m.store.GetItemsLength(), before+10)
	}
	if m.store.GetJumpCount() != 0 {
		t.Error("expected an append at the end to produce no jump")
	}
}

func TestModelPrependProducesJump(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})

	if m.store.GetJumpCount() == 0 {
		t.Error("expected a prepend to produce a jump compensation")
	}
}
