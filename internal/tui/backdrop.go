package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// pageChromeHeight is header + separator above the content area and the
// helpline below it.
const pageChromeHeight = 3

// contentTop is the first screen row of the content area.
const contentTop = 2

// RenderPage renders the page chrome around body: header, separator, a content
// area filled with the screen background, and the helpline. It returns the
// full page and the content area, which modals are composited onto.
func RenderPage(styles Styles, header HeaderModel, helpline HelplineModel, body string, width, height int) (page string, content string) {
	if width == 0 || height == 0 {
		return "Loading...", ""
	}

	header.SetWidth(width)
	sep := styles.HeaderBG.Width(width).Render(strings.Repeat(styles.SepChar, width))

	contentHeight := max(height-pageChromeHeight, 1)
	content = styles.Screen.
		Width(width).
		Height(contentHeight).
		Padding(1, 2).
		Render(MaintainBackground(body, styles.Screen))

	// Padding may push the block past the area on tiny terminals.
	if lipgloss.Height(content) > contentHeight {
		lines := strings.Split(content, "\n")
		content = strings.Join(lines[:contentHeight], "\n")
	}

	return strings.Join([]string{header.View(styles), sep, content, helpline.View(styles, width)}, "\n"), content
}

// ReplaceContent swaps the content area of a page rendered by RenderPage.
func ReplaceContent(page, content string) string {
	lines := strings.Split(page, "\n")
	cl := strings.Split(content, "\n")
	for i, line := range cl {
		if row := contentTop + i; row < len(lines)-1 {
			lines[row] = line
		}
	}
	return strings.Join(lines, "\n")
}
