package tui

import (
	"AdminDeck/internal/version"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// HeaderModel represents the header bar at the top of the TUI
type HeaderModel struct {
	width int

	// Cached values
	product  string
	hostname string
	flags    []string
	theme    string
}

// NewHeaderModel creates a new header model. flags are shown next to the
// hostname, e.g. VERBOSE or DEBUG.
func NewHeaderModel(product string, flags ...string) HeaderModel {
	hostname, _ := os.Hostname()
	return HeaderModel{
		product:  product,
		hostname: hostname,
		flags:    flags,
	}
}

// SetWidth sets the header width
func (m *HeaderModel) SetWidth(width int) {
	m.width = width
}

// SetTheme records the name of the theme in use.
func (m *HeaderModel) SetTheme(name string) {
	m.theme = name
}

// View renders the header: host and flags on the left, product and version on
// the right.
func (m HeaderModel) View(styles Styles) string {
	left := m.hostname
	if len(m.flags) > 0 {
		left += " [" + strings.Join(m.flags, ",") + "]"
	}
	right := m.product + " " + version.UI()
	if m.theme != "" {
		right = m.theme + " · " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return MaintainBackground(styles.HeaderBG.Width(m.width).MaxWidth(m.width).Render(line), styles.HeaderBG)
}
