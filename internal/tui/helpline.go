package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

// HelplineModel represents the help line at the bottom of the TUI
type HelplineModel struct {
	text   string
	status string
}

// NewHelplineModel creates a new helpline model
func NewHelplineModel() HelplineModel {
	return HelplineModel{}
}

// SetText updates the help text
func (m *HelplineModel) SetText(text string) {
	m.text = text
}

// SetBindings renders bindings as "key desc" pairs.
func (m *HelplineModel) SetBindings(bindings []key.Binding) {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	m.text = strings.Join(parts, " · ")
}

// SetStatus shows a transient message in place of the help text.
func (m *HelplineModel) SetStatus(status string) {
	m.status = status
}

// View renders the helpline
func (m HelplineModel) View(styles Styles, width int) string {
	if m.status != "" {
		st := styles.Status.Width(width).Align(lipgloss.Center)
		return MaintainBackground(st.Render(m.status), styles.Status)
	}
	helpStyle := styles.HelpLine.Width(width).Align(lipgloss.Center)
	return MaintainBackground(helpStyle.Render(m.text), styles.HelpLine)
}
