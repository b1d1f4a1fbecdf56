package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/HamStudy/vscroll/internal/components/dropdown"
	"github.com/HamStudy/vscroll/internal/components/selection"
	"github.com/HamStudy/vscroll/internal/components/style"
	"github.com/HamStudy/vscroll/internal/virtual"
)

// KeyMap defines the demo's key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Append   key.Binding
	Prepend  key.Binding
	Settings key.Binding
	Save     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the demo's default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append rows"),
		),
		Prepend: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prepend rows"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Save: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "save snapshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the demo's bubbletea model: a long synthetic feed rendered
// through a virtual.Store, with a selection tracker, themed styling,
// and a small settings overlay for adjusting overscan at runtime.
type Model struct {
	store   *virtual.Store
	tracker *selection.Tracker
	styles  *style.Manager
	keys    KeyMap
	logger  zerolog.Logger

	items    []item
	overscan int

	settings     settingsOverlay
	showSettings bool

	snapshotPath string
	lastJump     float64

	width, height int
	ready         bool
}

const headerHeight = 1

// NewModel builds a demo model seeding length rows, each defaultItemSize
// rows tall until measured. snapshotPath is optional; if it names an
// existing file, prior measurements are restored from it.
func NewModel(logger zerolog.Logger, length int, defaultItemSize float64, overscan int, reverse bool, snapshotPath string) (*Model, error) {
	cfg := virtual.StoreConfig{
		InitialLength:    length,
		DefaultItemSize:  defaultItemSize,
		Reverse:          reverse,
		AutoEstimateSize: true,
	}

	var store *virtual.Store
	var err error
	if snapshotPath != "" {
		if snap, loadErr := LoadSnapshot(snapshotPath); loadErr == nil {
			store, err = virtual.NewStoreFromSnapshot(cfg, snap)
		} else {
			store, err = virtual.NewStore(cfg)
		}
	} else {
		store, err = virtual.NewStore(cfg)
	}
	if err != nil {
		return nil, err
	}

	items := generateItems(length)
	tracker := selection.New()
	tracker.SetIdentities(identitiesFor(items, 0))

	m := &Model{
		store:        store,
		tracker:      tracker,
		styles:       style.NewManager(),
		keys:         DefaultKeyMap(),
		logger:       logger,
		items:        items,
		overscan:     overscan,
		settings:     newSettingsOverlay(overscan),
		snapshotPath: snapshotPath,
	}
	return m, nil
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func identitiesFor(items []item, startRow int) map[int]*selection.ItemIdentity {
	out := make(map[int]*selection.ItemIdentity, len(items))
	for i, it := range items {
		out[startRow+i] = &selection.ItemIdentity{Key: it.Title}
	}
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.store.Dispatch(virtual.ViewportResizeAction{ViewportSize: float64(msg.Height - headerHeight)})
		m.styles.ClearCache()

	case tea.KeyMsg:
		if m.showSettings {
			if key.Matches(msg, m.keys.Settings) {
				m.showSettings = false
				m.settings.Close()
				return m, nil
			}
			cmd, chosen := m.settings.Update(msg)
			if chosen != nil {
				m.overscan = *chosen
				m.showSettings = false
				m.settings.Close()
			}
			return m, cmd
		}
		return m.handleKey(msg)

	case dropdown.SelectedMsg, dropdown.CancelledMsg:
		cmd, chosen := m.settings.Update(msg)
		if chosen != nil {
			m.overscan = *chosen
		}
		m.showSettings = false
		return m, cmd
	}

	m.measureVisibleRange()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-m.store.DefaultItemSize())
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(m.store.DefaultItemSize())
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.store.GetViewportSize())
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.store.GetViewportSize())
	case key.Matches(msg, m.keys.Home):
		m.store.Dispatch(virtual.ManualScrollAction{ScrollOffset: 0})
	case key.Matches(msg, m.keys.End):
		m.store.Dispatch(virtual.ManualScrollAction{ScrollOffset: m.store.GetTotalSize()})

	case key.Matches(msg, m.keys.Append):
		m.appendRows(10)
	case key.Matches(msg, m.keys.Prepend):
		m.prependRows(5)

	case key.Matches(msg, m.keys.Settings):
		m.showSettings = true
		m.settings = newSettingsOverlay(m.overscan)
		m.settings.Open()

	case key.Matches(msg, m.keys.Save):
		if m.snapshotPath != "" {
			if err := SaveSnapshot(m.snapshotPath, m.store.Snapshot()); err != nil {
				m.logger.Error().Err(err).Msg("failed to save snapshot")
			} else {
				m.logger.Info().Str("path", m.snapshotPath).Msg("saved snapshot")
			}
		}
	}

	m.measureVisibleRange()
	return m, nil
}

// scrollBy dispatches a ScrollAction for a relative offset change,
// followed by a ScrollEndAction: the demo has no momentum phase of its
// own, so every keypress-driven scroll settles immediately.
func (m *Model) scrollBy(delta float64) {
	m.store.Dispatch(virtual.ScrollAction{ScrollOffset: m.store.GetScrollOffset() + delta})
	m.store.Dispatch(virtual.ScrollEndAction{})
	if jump := m.store.FlushJump(); jump != 0 {
		m.lastJump = jump
		m.logger.Debug().Float64("jump", jump).Msg("applied jump compensation")
	}
}

func (m *Model) appendRows(n int) {
	newItems := generateItems(len(m.items) + n)
	m.items = newItems
	m.store.Dispatch(virtual.ItemsLengthChangeAction{NewLength: len(m.items), ShiftItem: false})
}

func (m *Model) prependRows(n int) {
	fresh := generateItems(n)
	m.items = append(fresh, m.items...)
	m.store.Dispatch(virtual.ItemsLengthChangeAction{NewLength: len(m.items), ShiftItem: true})
	m.tracker.SetIdentities(identitiesFor(m.items, 0))
	m.tracker.RestoreSelection(len(m.items))
	if jump := m.store.FlushJump(); jump != 0 {
		m.lastJump = jump
		m.logger.Debug().Float64("jump", jump).Msg("prepend produced jump compensation")
	}
}

// measureVisibleRange simulates the render-then-measure cycle a real
// terminal or browser host performs: rows entering the visible range
// report their true size once, which is what lets the cache stop
// relying on the default estimate for them.
func (m *Model) measureVisibleRange() {
	start, end := m.store.GetRange(m.overscan)
	if start >= 0 && start < len(m.items) {
		m.tracker.UpdateSelection(start)
	}
	for i := start; i <= end && i >= 0; i++ {
		if i >= len(m.items) {
			continue
		}
		if m.store.IsItemMeasured(i) {
			continue
		}
		size := float64(strings.Count(m.items[i].Body, "\n") + 1)
		m.store.Dispatch(virtual.ItemResizeAction{Index: i, Size: size})
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "initializing…"
	}

	headerText := fmt.Sprintf(
		"rows=%d total=%.0f offset=%.0f jumps=%d overscan=%d",
		m.store.GetItemsLength(), m.store.GetTotalSize(), m.store.GetScrollOffset(),
		m.store.GetJumpCount(), m.overscan,
	)
	header := m.styles.HeaderCell(m.width).Render(headerText)
	if m.lastJump != 0 {
		badge := m.styles.JumpIndicator(absFloat(m.lastJump), m.store.GetViewportSize()).
			Render(fmt.Sprintf(" jump %+.0f ", m.lastJump))
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, badge)
	}

	start, end := m.store.GetRange(m.overscan)
	var body strings.Builder
	selectedRow := m.tracker.SelectedRow()
	for i := start; i <= end && i >= 0; i++ {
		if i >= len(m.items) {
			continue
		}
		body.WriteString(renderRow(m.items[i], m.width, i == selectedRow, !m.store.IsItemMeasured(i), m.styles))
		body.WriteString("\n")
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, body.String())
	if m.showSettings {
		return lipgloss.JoinVertical(lipgloss.Left, view, m.settings.View())
	}
	return view
}
