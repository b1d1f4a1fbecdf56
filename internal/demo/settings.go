package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HamStudy/vscroll/internal/components/dropdown"
)

// overscanOption pairs a display label with the overscan value it sets.
type overscanOption struct {
	label string
	value int
}

var overscanOptions = []overscanOption{
	{"0 — no overscan", 0},
	{"2 — light overscan", 2},
	{"5 — default overscan", 5},
	{"10 — heavy overscan", 10},
}

// settingsOverlay is a small runtime settings panel, built on the
// generic dropdown widget, that lets the demo's overscan amount be
// changed without restarting the program.
type settingsOverlay struct {
	dropdown dropdown.Model
}

func newSettingsOverlay(currentOverscan int) settingsOverlay {
	opts := make([]dropdown.Option, len(overscanOptions))
	selected := 0
	for i, o := range overscanOptions {
		opts[i] = dropdown.Option{
			Label:       o.label,
			Description: "adjust how many offscreen rows stay mounted",
			Value:       o.value,
		}
		if o.value == currentOverscan {
			selected = i
		}
	}

	m := dropdown.New(opts)
	m.SetTitle("Overscan")
	m.SetSelectedIndex(selected)
	return settingsOverlay{dropdown: m}
}

func (o *settingsOverlay) Open()        { o.dropdown.Open() }
func (o *settingsOverlay) Close()       { o.dropdown.Close() }
func (o *settingsOverlay) IsOpen() bool { return o.dropdown.IsOpen() }

// Update forwards msg to the embedded dropdown and, when the user
// selects an option, returns the chosen overscan value.
func (o *settingsOverlay) Update(msg tea.Msg) (tea.Cmd, *int) {
	next, cmd := o.dropdown.Update(msg)
	o.dropdown = next

	if sel, ok := msg.(dropdown.SelectedMsg); ok {
		if v, ok := sel.Option.Value.(int); ok {
			return cmd, &v
		}
	}
	return cmd, nil
}

func (o *settingsOverlay) View() string { return o.dropdown.View() }
