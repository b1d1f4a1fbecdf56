// Package style provides cached lipgloss styling for the virtualized list
// demo: row/selection/spacer styles plus a small set of named themes.
package style

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Manager hands out lipgloss styles for rendered rows, memoized by a
// cache key so repeated renders of the same row kind don't rebuild a
// style object every frame.
type Manager struct {
	theme *Theme
	cache map[string]lipgloss.Style
	mu    sync.RWMutex
}

// Theme defines the color palette used to render the demo's list.
type Theme struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Colors      *ColorScheme      `yaml:"colors"`
	Styles      *StyleDefinitions `yaml:"styles"`
}

// ColorScheme defines the color palette.
type ColorScheme struct {
	Background lipgloss.Color   `yaml:"background"`
	Foreground lipgloss.Color   `yaml:"foreground"`
	Selection  *SelectionColors `yaml:"selection"`
	UI         *UIColors        `yaml:"ui"`
	// Jump gradient colors the jump badge (see JumpIndicator) by how
	// large the last compensation was relative to the viewport.
	Jump *GradientColors `yaml:"jump"`
}

// SelectionColors for the selected row.
type SelectionColors struct {
	Background lipgloss.Color `yaml:"background"`
	Foreground lipgloss.Color `yaml:"foreground"`
}

// GradientColors for a value that ramps from calm to alarming.
type GradientColors struct {
	Low      lipgloss.Color `yaml:"low"`
	Medium   lipgloss.Color `yaml:"medium"`
	High     lipgloss.Color `yaml:"high"`
	Critical lipgloss.Color `yaml:"critical"`
}

// UIColors for chrome elements (border, spacer, header, unmeasured marker).
type UIColors struct {
	Border     lipgloss.Color `yaml:"border"`
	Header     lipgloss.Color `yaml:"header"`
	Spacer     lipgloss.Color `yaml:"spacer"`
	Unmeasured lipgloss.Color `yaml:"unmeasured"`
}

// StyleDefinitions for common chrome elements.
type StyleDefinitions struct {
	Header lipgloss.Style `yaml:"header"`
	Title  lipgloss.Style `yaml:"title"`
	Border lipgloss.Style `yaml:"border"`
}

// NewManager creates a style manager with the default theme.
func NewManager() *Manager {
	return &Manager{
		theme: getDefaultTheme(),
		cache: make(map[string]lipgloss.Style),
	}
}

// SetTheme swaps the active theme and invalidates the style cache.
func (m *Manager) SetTheme(theme *Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
	m.cache = make(map[string]lipgloss.Style)
}

// GetTheme returns the active theme.
func (m *Manager) GetTheme() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// RowCell returns the style for a rendered item row, selected or not.
func (m *Manager) RowCell(width int, selected bool) lipgloss.Style {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cacheKey := fmt.Sprintf("row_%d_%t", width, selected)
	if style, ok := m.cache[cacheKey]; ok {
		return style
	}

	var style lipgloss.Style
	if selected {
		style = lipgloss.NewStyle().
			Width(width).
			Background(m.theme.Colors.Selection.Background).
			Foreground(m.theme.Colors.Selection.Foreground)
	} else {
		style = lipgloss.NewStyle().
			Width(width).
			Foreground(m.theme.Colors.Foreground)
	}

	m.cache[cacheKey] = style
	return style
}

// UnmeasuredCell returns the style for an item whose size is still the
// default estimate (Store.IsItemMeasured == false).
func (m *Manager) UnmeasuredCell(width int) lipgloss.Style {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cacheKey := fmt.Sprintf("unmeasured_%d", width)
	if style, ok := m.cache[cacheKey]; ok {
		return style
	}

	style := lipgloss.NewStyle().Width(width).Foreground(m.theme.Colors.UI.Unmeasured).Italic(true)
	m.cache[cacheKey] = style
	return style
}

// SpacerCell returns the style for the start/end spacer padding.
func (m *Manager) SpacerCell(width int) lipgloss.Style {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cacheKey := fmt.Sprintf("spacer_%d", width)
	if style, ok := m.cache[cacheKey]; ok {
		return style
	}

	style := lipgloss.NewStyle().Width(width).Background(m.theme.Colors.UI.Spacer)
	m.cache[cacheKey] = style
	return style
}

// JumpIndicator colors the on-screen jump counter badge by how large
// the last compensation was, reusing the gradient-threshold idiom.
func (m *Manager) JumpIndicator(jumpMagnitude, viewportSize float64) lipgloss.Style {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ratio := 0.0
	if viewportSize > 0 {
		ratio = jumpMagnitude / viewportSize
	}

	var color lipgloss.Color
	switch {
	case ratio < 0.1:
		color = m.theme.Colors.Jump.Low
	case ratio < 0.35:
		color = m.theme.Colors.Jump.Medium
	case ratio < 0.75:
		color = m.theme.Colors.Jump.High
	default:
		color = m.theme.Colors.Jump.Critical
	}

	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

// HeaderCell returns the demo's status-bar style.
func (m *Manager) HeaderCell(width int) lipgloss.Style {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cacheKey := fmt.Sprintf("header_%d", width)
	if style, ok := m.cache[cacheKey]; ok {
		return style
	}

	style := lipgloss.NewStyle().Width(width).Bold(true).Foreground(m.theme.Colors.UI.Header)
	m.cache[cacheKey] = style
	return style
}

// ClearCache drops every memoized style (e.g. after a terminal resize).
func (m *Manager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]lipgloss.Style)
}

func getDefaultTheme() *Theme {
	return &Theme{
		Name:        "default",
		Description: "Default dark theme",
		Colors: &ColorScheme{
			Background: lipgloss.Color("#1e1e1e"),
			Foreground: lipgloss.Color("#d4d4d4"),
			Selection: &SelectionColors{
				Background: lipgloss.Color("#264f78"),
				Foreground: lipgloss.Color("#ffffff"),
			},
			Jump: &GradientColors{
				Low:      lipgloss.Color("#4ec9b0"),
				Medium:   lipgloss.Color("#dcdcaa"),
				High:     lipgloss.Color("#ce9178"),
				Critical: lipgloss.Color("#f44747"),
			},
			UI: &UIColors{
				Border:     lipgloss.Color("#3c3c3c"),
				Header:     lipgloss.Color("#cccccc"),
				Spacer:     lipgloss.Color("#252526"),
				Unmeasured: lipgloss.Color("#808080"),
			},
		},
	}
}

// GetLightTheme returns a light theme variant.
func GetLightTheme() *Theme {
	return &Theme{
		Name:        "light",
		Description: "Light theme",
		Colors: &ColorScheme{
			Background: lipgloss.Color("#ffffff"),
			Foreground: lipgloss.Color("#000000"),
			Selection: &SelectionColors{
				Background: lipgloss.Color("#0078d4"),
				Foreground: lipgloss.Color("#ffffff"),
			},
			Jump: &GradientColors{
				Low:      lipgloss.Color("#107c10"),
				Medium:   lipgloss.Color("#ffb900"),
				High:     lipgloss.Color("#ff8c00"),
				Critical: lipgloss.Color("#d13438"),
			},
			UI: &UIColors{
				Border:     lipgloss.Color("#d1d1d1"),
				Header:     lipgloss.Color("#323130"),
				Spacer:     lipgloss.Color("#f3f2f1"),
				Unmeasured: lipgloss.Color("#605e5c"),
			},
		},
	}
}
