package dropdown

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testOptions() []Option {
	return []Option{
		{Label: "Zero", Description: "first", Value: 0},
		{Label: "Five", Description: "second", Value: 5},
		{Label: "Ten", Description: "third", Value: 10},
	}
}

func TestNavigationWraps(t *testing.T) {
	m := New(testOptions())
	m.Open()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.GetSelectedIndex(); got != len(testOptions())-1 {
		t.Errorf("selected index = %d, want %d (wrap to last)", got, len(testOptions())-1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.GetSelectedIndex(); got != 0 {
		t.Errorf("selected index = %d, want 0 (wrap to first)", got)
	}
}

func TestEnterEmitsSelectedMsg(t *testing.T) {
	m := New(testOptions())
	m.Open()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // select index 1

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsOpen() {
		t.Error("expected dropdown to close on enter")
	}
	if cmd == nil {
		t.Fatal("expected a command emitting SelectedMsg")
	}
	msg := cmd()
	sel, ok := msg.(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg, got %T", msg)
	}
	if sel.Option.Value != 5 {
		t.Errorf("selected value = %v, want 5", sel.Option.Value)
	}
}

func TestEscapeEmitsCancelledMsg(t *testing.T) {
	m := New(testOptions())
	m.Open()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() {
		t.Error("expected dropdown to close on escape")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected a command emitting CancelledMsg")
	}
}

func TestClosedDropdownIgnoresKeys(t *testing.T) {
	m := New(testOptions())
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Error("expected a closed dropdown to ignore key input")
	}
	if m.GetSelectedIndex() != 0 {
		t.Error("expected selection to remain unchanged while closed")
	}
}

func TestViewRendersDescription(t *testing.T) {
	m := New(testOptions())
	m.Open()
	out := m.View()
	if out == "" {
		t.Fatal("expected non-empty view while open")
	}
	if !strings.Contains(out, "first") {
		t.Errorf("expected the selected option's description in the view, got:\n%s", out)
	}
}
