package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Position constants for overlay placement
type OverlayPosition int

const (
	OverlayCenter OverlayPosition = iota
	OverlayTop
	OverlayBottom
	OverlayLeft
	OverlayRight
)

// Rect is a cell rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// blockSize returns the width of the widest line and the number of lines.
func blockSize(s string) (w, h int) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w, len(lines)
}

// Place computes where a foreground block lands on a background block.
func Place(fgW, fgH, bgW, bgH int, hPos, vPos OverlayPosition, xOffset, yOffset int) Rect {
	var x, y int
	switch hPos {
	case OverlayLeft:
		x = 0
	case OverlayRight:
		x = bgW - fgW
	default:
		x = (bgW - fgW) / 2
	}
	switch vPos {
	case OverlayTop:
		y = 0
	case OverlayBottom:
		y = bgH - fgH
	default:
		y = (bgH - fgH) / 2
	}
	x = max(x+xOffset, 0)
	y = max(y+yOffset, 0)
	return Rect{X: x, Y: y, W: fgW, H: fgH}
}

// Overlay composites a foreground string over a background string at the specified position.
// Lines are cut with ANSI-aware truncation so styled backgrounds survive on both sides.
func Overlay(foreground, background string, hPos, vPos OverlayPosition, xOffset, yOffset int) string {
	if foreground == "" {
		return background
	}
	if background == "" {
		return foreground
	}
	fgW, fgH := blockSize(foreground)
	bgW, bgH := blockSize(background)
	return OverlayAt(foreground, background, Place(fgW, fgH, bgW, bgH, hPos, vPos, xOffset, yOffset))
}

// OverlayAt composites foreground at r.X, r.Y. Foreground lines outside the
// background are dropped.
func OverlayAt(foreground, background string, r Rect) string {
	result := strings.Split(background, "\n")
	for i, fgLine := range strings.Split(foreground, "\n") {
		row := r.Y + i
		if row < 0 || row >= len(result) {
			continue
		}
		bgLine := result[row]
		bgLineWidth := ansi.StringWidth(bgLine)
		if bgLineWidth < r.X {
			bgLine += strings.Repeat(" ", r.X-bgLineWidth)
			bgLineWidth = r.X
		}

		var b strings.Builder
		b.WriteString(ansi.Truncate(bgLine, r.X, ""))
		b.WriteString("\x1b[0m")
		b.WriteString(fgLine)
		b.WriteString("\x1b[0m")
		if end := r.X + ansi.StringWidth(fgLine); end < bgLineWidth {
			b.WriteString(ansi.TruncateLeft(bgLine, end, ""))
		}
		result[row] = b.String()
	}
	return strings.Join(result, "\n")
}
