package modal

import (
	"AdminDeck/internal/theme"
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

// Subtree is the isolated content root of a self-owned surface. Its look is
// computed from design tokens alone; nothing from the host page's styles is
// consulted.
type Subtree struct {
	treeNode
	title *Element
	body  *Element

	tokens         theme.Tokens
	lineCharacters bool
}

// NewSubtree creates a subtree with a title and a description region.
func NewSubtree(tokens theme.Tokens, lineCharacters bool) *Subtree {
	st := &Subtree{tokens: tokens, lineCharacters: lineCharacters}
	st.title = NewElement(defaultLabelledBy)
	st.body = NewElement(defaultDescribedBy)
	st.AppendChild(st.title)
	st.AppendChild(st.body)
	return st
}

// Name implements Node.
func (st *Subtree) Name() string { return "#shadow-root" }

// AppendChild implements Container.
func (st *Subtree) AppendChild(child Node) { st.appendChild(st, child) }

// RemoveChild implements Container.
func (st *Subtree) RemoveChild(child Node) { st.removeChild(child) }

// TitleNode is the element labelling the surface.
func (st *Subtree) TitleNode() Node { return st.title }

// BodyNode is the element describing the surface.
func (st *Subtree) BodyNode() Node { return st.body }

// Tokens returns the tokens in effect.
func (st *Subtree) Tokens() theme.Tokens { return st.tokens }

// SetTokens restyles the subtree.
func (st *Subtree) SetTokens(t theme.Tokens) { st.tokens = t }

// Frame draws body inside a bordered box of the given outer width, with the
// title embedded in the top border: ┌───┤ Title ├───┐
func (st *Subtree) Frame(title, body string, width int) string {
	return renderFrame(st.tokens, st.lineCharacters, title, body, width)
}

func renderFrame(t theme.Tokens, lineChars bool, title, body string, width int) string {
	border := asciiBorder
	leftT, rightT := "+", "+"
	if lineChars {
		border = lipgloss.NormalBorder()
		leftT, rightT = "┤", "├"
	}

	bg := theme.Color(t.Surface)
	light := lipgloss.NewStyle().Foreground(theme.Color(t.Border)).Background(bg)
	dark := lipgloss.NewStyle().Foreground(theme.Color(t.Border2)).Background(bg)
	text := lipgloss.NewStyle().Foreground(theme.Color(t.Text)).Background(bg)
	titleStyle := t.TitleStyle().Background(bg)

	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	var result strings.Builder

	// Top border (with or without title)
	result.WriteString(light.Render(border.TopLeft))
	title = ansi.Truncate(title, max(inner-4, 0), "…")
	if title == "" {
		result.WriteString(light.Render(strings.Repeat(border.Top, inner)))
	} else {
		section := 1 + 1 + lipgloss.Width(title) + 1 + 1
		leftPad := max((inner-section)/2, 0)
		rightPad := max(inner-section-leftPad, 0)
		result.WriteString(light.Render(strings.Repeat(border.Top, leftPad) + leftT + " "))
		result.WriteString(titleStyle.Render(title))
		result.WriteString(light.Render(" " + rightT + strings.Repeat(border.Top, rightPad)))
	}
	result.WriteString(light.Render(border.TopRight))
	result.WriteString("\n")

	// Content lines with left/right borders
	for _, line := range strings.Split(body, "\n") {
		line = ansi.Truncate(line, inner, "…")
		if pad := inner - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		result.WriteString(light.Render(border.Left))
		result.WriteString(text.Render(line))
		result.WriteString(dark.Render(border.Right))
		result.WriteString("\n")
	}

	// Bottom border
	result.WriteString(dark.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight))

	return result.String()
}
