package content

import (
	"AdminDeck/internal/theme"
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

var copyKey = key.NewBinding(
	key.WithKeys("c"),
	key.WithHelp("c", "copy details"),
)

// AboutPanel shows branding and build details. Details are fetched every time
// the panel opens; a spinner shows until they arrive.
type AboutPanel struct {
	key      string
	brand    Brand
	provider Provider
	parent   context.Context
	logger   *log.Logger
	tokens   theme.Tokens

	cancel  context.CancelFunc
	gen     uint64
	active  bool
	loading bool
	entries []Entry
	err     error
	status  string
	width   int

	spinner spinner.Model

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

// NewAboutPanel creates the panel. key must match the key of the controller
// the panel is given to so that results can be routed back.
func NewAboutPanel(ctx context.Context, key string, brand Brand, p Provider, l *log.Logger) *AboutPanel {
	if l == nil {
		l = log.Default()
	}
	return &AboutPanel{
		key:      key,
		brand:    brand,
		provider: p,
		parent:   ctx,
		logger:   l,
		tokens:   theme.Default(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		copyText: clipboard.WriteAll,
	}
}

// Title implements modal.Titler.
func (a *AboutPanel) Title() string { return "About " + a.brand.Product() }

// SetSize implements modal.Sizer.
func (a *AboutPanel) SetSize(width, _ int) { a.width = width }

// SetTokens implements modal.Styler.
func (a *AboutPanel) SetTokens(t theme.Tokens) { a.tokens = t }

// Loading reports whether a fetch is outstanding.
func (a *AboutPanel) Loading() bool { return a.loading }

// Entries returns the loaded entries.
func (a *AboutPanel) Entries() []Entry { return a.entries }

// Err returns the error of the last fetch.
func (a *AboutPanel) Err() error { return a.err }

// Activate starts a new fetch. A fetch still running from an earlier opening
// is cancelled and its result will be ignored.
func (a *AboutPanel) Activate() tea.Cmd {
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(a.parent)
	a.cancel = cancel
	a.gen++
	a.active = true
	a.loading = true
	a.entries = nil
	a.err = nil
	a.status = ""
	return tea.Batch(a.spinner.Tick, Fetch(ctx, a.key, a.gen, "about", a.provider))
}

// Deactivate cancels an outstanding fetch.
func (a *AboutPanel) Deactivate() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.active = false
	a.loading = false
}

// Update implements modal.Updater.
func (a *AboutPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ResultMsg:
		if msg.Key != a.key {
			return nil
		}
		if !a.active || msg.Generation != a.gen {
			a.logger.Debug("Discarding stale result", "modal", a.key, "generation", msg.Generation, "current", a.gen)
			return nil
		}
		a.loading = false
		a.entries = msg.Entries
		a.err = msg.Err
		if msg.Err != nil {
			a.logger.Warn("About details unavailable", "modal", a.key, "error", msg.Err)
		}
		return nil

	case spinner.TickMsg:
		if !a.loading {
			return nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return cmd

	case tea.KeyPressMsg:
		if !a.active || !key.Matches(msg, copyKey) || len(a.entries) == 0 {
			return nil
		}
		if err := a.copyText(a.PlainText()); err != nil {
			a.status = "Copy failed: " + err.Error()
		} else {
			a.status = "Copied to clipboard"
		}
	}
	return nil
}

// PlainText renders the details without styling, as copied to the clipboard.
func (a *AboutPanel) PlainText() string {
	var b strings.Builder
	b.WriteString(a.brand.Product())
	b.WriteString("\n")
	for _, e := range a.entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Label, ansi.Strip(e.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Content implements modal.Presenter.
func (a *AboutPanel) Content() string {
	muted := lipgloss.NewStyle().Foreground(theme.Color(a.tokens.Muted))
	accent := lipgloss.NewStyle().Foreground(theme.Color(a.tokens.Accent)).Bold(true)
	danger := lipgloss.NewStyle().Foreground(theme.Color(a.tokens.Danger))

	lines := []string{accent.Render(a.brand.Heading()), ""}

	switch {
	case a.loading:
		lines = append(lines, a.spinner.View()+" Loading details…")
	case a.err != nil:
		lines = append(lines, danger.Render("Could not load details: "+a.err.Error()))
	default:
		labelWidth := 0
		for _, e := range a.entries {
			labelWidth = max(labelWidth, lipgloss.Width(e.Label))
		}
		for _, e := range a.entries {
			label := e.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(e.Label))
			lines = append(lines, muted.Render(label)+"  "+e.Value)
		}
	}

	lines = append(lines, "")
	if a.status != "" {
		lines = append(lines, a.status)
	}
	help := copyKey.Help()
	lines = append(lines, muted.Render(help.Key+" "+help.Desc+" · esc close"))
	return strings.Join(lines, "\n")
}
