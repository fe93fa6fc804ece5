package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// RenderDialog draws the page's own dialog surface around content. It is used
// for surfaces the page owns; modals that own their surface bring their own
// frame. If title is empty, renders a plain top border without title.
func RenderDialog(styles Styles, title, content string, width int) string {
	var border lipgloss.Border
	var leftT, rightT string
	if styles.SepChar == "-" {
		border, leftT, rightT = asciiBorder, "+", "+"
	} else {
		border, leftT, rightT = lipgloss.NormalBorder(), "┤", "├"
	}

	borderBG := styles.Dialog.GetBackground()
	borderStyleLight := lipgloss.NewStyle().
		Foreground(styles.BorderColor).
		Background(borderBG)
	borderStyleDark := lipgloss.NewStyle().
		Foreground(styles.Border2Color).
		Background(borderBG)
	titleStyle := styles.DialogTitle.Background(borderBG)

	inner := max(width-2, 1)
	maxTitle := inner - 4
	if maxTitle < 1 {
		title = ""
	} else {
		title = ansi.Truncate(title, maxTitle, "…")
	}

	var result strings.Builder

	// Top border, with the title embedded as ────┤ Title ├────
	result.WriteString(borderStyleLight.Render(border.TopLeft))
	if title == "" {
		result.WriteString(borderStyleLight.Render(strings.Repeat(border.Top, inner)))
	} else {
		titleSectionLen := 1 + 1 + ansi.StringWidth(title) + 1 + 1
		leftPad := (inner - titleSectionLen) / 2
		rightPad := inner - titleSectionLen - leftPad
		result.WriteString(borderStyleLight.Render(strings.Repeat(border.Top, leftPad) + leftT + " "))
		result.WriteString(titleStyle.Render(title))
		result.WriteString(borderStyleLight.Render(" " + rightT + strings.Repeat(border.Top, rightPad)))
	}
	result.WriteString(borderStyleLight.Render(border.TopRight))
	result.WriteString("\n")

	body := styles.Dialog.Width(inner)
	for _, line := range strings.Split(content, "\n") {
		line = ansi.Truncate(line, inner, "")
		result.WriteString(borderStyleLight.Render(border.Left))
		result.WriteString(MaintainBackground(body.Render(line), styles.Dialog))
		result.WriteString(borderStyleDark.Render(border.Right))
		result.WriteString("\n")
	}

	result.WriteString(borderStyleDark.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight))

	return result.String()
}
