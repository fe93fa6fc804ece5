package tui

import (
	"AdminDeck/internal/config"
	"AdminDeck/internal/theme"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Styles holds all lipgloss styles derived from the theme tokens.
type Styles struct {
	// Screen
	Screen lipgloss.Style

	// Dialog (page-owned surfaces)
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Borders
	Border       lipgloss.Border
	BorderColor  color.Color
	Border2Color color.Color

	// Shadow
	Shadow  lipgloss.Style
	Shadows bool

	// Header and help line
	HeaderBG lipgloss.Style
	HelpLine lipgloss.Style
	Status   lipgloss.Style

	// Separator
	SepChar string
}

// NewStyles builds the page styles from the tokens and the [ui] settings.
func NewStyles(t theme.Tokens, ui config.UIConfig) Styles {
	var s Styles

	// Border style based on LineCharacters setting
	if ui.LineCharacters {
		s.Border = lipgloss.RoundedBorder()
		s.SepChar = "─"
	} else {
		s.Border = lipgloss.NormalBorder()
		s.SepChar = "-"
	}

	s.Screen = lipgloss.NewStyle().
		Background(theme.Color(t.Backdrop)).
		Foreground(theme.Color(t.Text))

	s.Dialog = lipgloss.NewStyle().
		Background(theme.Color(t.Surface)).
		Foreground(theme.Color(t.Text))
	s.DialogTitle = t.TitleStyle()

	s.BorderColor = theme.Color(t.Border)
	s.Border2Color = theme.Color(t.Border2)

	s.Shadows = ui.Shadow
	s.Shadow = lipgloss.NewStyle().Background(theme.Color(t.Shadow))

	s.HeaderBG = lipgloss.NewStyle().
		Background(theme.Color(t.Backdrop)).
		Foreground(theme.Color(t.Text))
	s.HelpLine = s.HeaderBG
	s.Status = lipgloss.NewStyle().
		Background(theme.Color(t.Backdrop)).
		Foreground(theme.Color(t.Danger))
	return s
}

// CenterText centers text within a given width
func CenterText(s string, width int) string {
	textWidth := lipgloss.Width(s)
	if textWidth >= width {
		return s
	}
	leftPad := (width - textWidth) / 2
	return lipgloss.NewStyle().PaddingLeft(leftPad).Render(s)
}

// Apply3DBorder applies 3D border effect to a style
// Light color on top/left, dark color on bottom/right
func (s Styles) Apply3DBorder(style lipgloss.Style) lipgloss.Style {
	borderBG := s.Dialog.GetBackground()

	return style.
		Border(s.Border).
		BorderTopForeground(s.BorderColor).
		BorderLeftForeground(s.BorderColor).
		BorderBottomForeground(s.Border2Color).
		BorderRightForeground(s.Border2Color).
		BorderTopBackground(borderBG).
		BorderLeftBackground(borderBG).
		BorderBottomBackground(borderBG).
		BorderRightBackground(borderBG)
}

// AddShadow adds a shadow effect to rendered content if shadow is enabled
func (s Styles) AddShadow(content string) string {
	if !s.Shadows {
		return content
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	// Bottom shadow is offset one cell to the right; the right shadow skips
	// the first row.
	rightShadow := s.Shadow.Width(1).Height(contentHeight - 1).Render("")
	rightCol := lipgloss.JoinVertical(lipgloss.Left, s.Screen.Width(1).Render(" "), rightShadow)
	withRight := lipgloss.JoinHorizontal(lipgloss.Top, content, rightCol)

	bottomRow := s.Screen.Width(1).Render(" ") + s.Shadow.Width(contentWidth).Height(1).Render("")
	return lipgloss.JoinVertical(lipgloss.Left, withRight, bottomRow)
}

// MaintainBackground replaces ANSI resets (\x1b[0m) with a reset followed by the parent style's background.
// This prevents content-level resets from "bleeding" to the terminal default background.
func MaintainBackground(text string, style lipgloss.Style) string {
	bg := style.GetBackground()
	if bg == nil {
		return text
	}
	if _, none := bg.(lipgloss.NoColor); none {
		return text
	}

	dummy := lipgloss.NewStyle().Background(bg).Render("T")
	parts := strings.Split(dummy, "T")
	if len(parts) == 0 {
		return text
	}
	bgCode := parts[0]

	return strings.ReplaceAll(text, "\x1b[0m", "\x1b[0m"+bgCode)
}
