package tui

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap defines the page-level key bindings. Keys not matched here go to the
// topmost open modal.
//   - Page:   About, Panic, Theme (only while no modal is open)
//   - Modal:  Esc (close request, honors closedby)
//   - Utility: Quit, ForceQuit
type KeyMap struct {
	About key.Binding
	Panic key.Binding
	Theme key.Binding

	Esc key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns bindings shown in the helpline while no modal is open.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.About, k.Panic, k.Theme, k.Quit}
}

// ModalHelp returns bindings shown in the helpline while a modal is open.
func (k KeyMap) ModalHelp() []key.Binding {
	return []key.Binding{k.Esc, k.ForceQuit}
}

// Keys is the default key map used throughout the TUI.
var Keys = KeyMap{
	About: key.NewBinding(
		key.WithKeys("a", "f1"),
		key.WithHelp("a", "about"),
	),
	Panic: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "panic mode"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "reload theme"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
}
