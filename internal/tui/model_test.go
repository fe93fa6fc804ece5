package tui

import (
	"AdminDeck/internal/config"
	"AdminDeck/internal/constants"
	"AdminDeck/internal/content"
	"AdminDeck/internal/logger"
	"AdminDeck/internal/modal"
	"AdminDeck/internal/theme"
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := config.Default()
	cfg.AuditFile = filepath.Join(t.TempDir(), "audit.yml")
	return cfg
}

func newTestModel(t *testing.T, cfg config.AppConfig, opts Options) AppModel {
	t.Helper()
	m := NewAppModel(context.Background(), cfg, theme.Default(), opts)
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func press(m AppModel, k string) (AppModel, tea.Cmd) {
	switch k {
	case "esc":
		return send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	case "enter":
		return send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	r := []rune(k)[0]
	return send(m, tea.KeyPressMsg{Code: r, Text: k})
}

// collect runs cmd and every batch inside it, returning the messages of the
// given type.
func collect[T any](cmd tea.Cmd) []T {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []T
		for _, c := range msg {
			out = append(out, collect[T](c)...)
		}
		return out
	case T:
		return []T{msg}
	}
	return nil
}

func screen(m AppModel) string {
	return ansi.Strip(m.View().Content)
}

func TestAboutOpensAndLoads(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{})
	assert.NotContains(t, screen(m), "About AdminDeck")

	m, cmd := press(m, "a")
	require.True(t, m.about.Open())
	assert.Same(t, m.about, m.top())
	assert.Contains(t, screen(m), "About AdminDeck")

	results := collect[content.ResultMsg](cmd)
	require.Len(t, results, 1)
	m, _ = send(m, results[0])
	assert.Contains(t, screen(m), "Go version")
}

func TestEscClosesTopModal(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{})
	m, _ = press(m, "a")
	require.True(t, m.about.Open())

	m, _ = press(m, "esc")
	assert.False(t, m.about.Open())
	assert.Nil(t, m.top())
	assert.NotContains(t, screen(m), "About AdminDeck")
}

func TestEscRefusedWhenClosedByNone(t *testing.T) {
	cfg := testConfig(t)
	cfg.Modal.ClosedBy = "none"
	m := newTestModel(t, cfg, Options{})
	m, _ = press(m, "a")

	m, _ = press(m, "esc")
	assert.True(t, m.about.Open())
}

func TestBackdropClickClosesAbout(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{})
	m, _ = press(m, "a")

	r, ok := m.modalRect(m.about)
	require.True(t, ok)

	// Inside the frame: stays open.
	m, _ = send(m, tea.MouseClickMsg{X: r.X + 1, Y: r.Y + 1, Button: tea.MouseLeft})
	assert.True(t, m.about.Open())

	// On the backdrop: light dismiss.
	m, _ = send(m, tea.MouseClickMsg{X: 0, Y: contentTop, Button: tea.MouseLeft})
	assert.False(t, m.about.Open())
}

func TestPanicBackdropFollowsClosedBy(t *testing.T) {
	tests := []struct {
		policy string
		closes bool
	}{
		{"any", true},
		{"closerequest", false},
		{"none", false},
	}
	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Modal.ClosedBy = tt.policy
			m := newTestModel(t, cfg, Options{})
			m, _ = press(m, "p")
			require.True(t, m.panic.Open())

			m, _ = send(m, tea.MouseClickMsg{X: 0, Y: contentTop, Button: tea.MouseLeft})
			assert.Equal(t, !tt.closes, m.panic.Open())
			assert.Equal(t, !tt.closes, m.panicSurface.IsOpen())
		})
	}
}

func TestInitialOpen(t *testing.T) {
	m := NewAppModel(context.Background(), testConfig(t), theme.Default(), Options{Open: constants.OpenAbout})
	assert.False(t, m.about.Open(), "the initial open is queued, not immediate")

	m, _ = send(m, m.Init()())
	assert.True(t, m.about.Open())
}

func TestPanicFormSubmits(t *testing.T) {
	cfg := testConfig(t)
	m := newTestModel(t, cfg, Options{})

	m, _ = press(m, "p")
	require.True(t, m.panicSurface.IsOpen())
	require.True(t, m.panic.Open(), "the host-owned modal follows the page's surface")
	assert.Contains(t, screen(m), "Panic mode")

	for _, k := range []string{"d", "i", "s", "k"} {
		m, _ = press(m, k)
	}
	m, cmd := press(m, "enter")
	results := collect[content.SubmitResultMsg](cmd)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	m, _ = send(m, results[0])
	assert.False(t, m.panicSurface.IsOpen())
	assert.False(t, m.panic.Open())
	assert.Equal(t, content.ReturnSubmitted, m.panicSurface.ReturnValue())
	assert.Contains(t, screen(m), "Last panic-mode request: submitted")

	got, err := content.ReadAudit(cfg.AuditFile)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "disk", got[0].Reason)
}

func TestStackedModals(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{})
	m, _ = press(m, "a")

	// The page can open its own surface underneath.
	require.NoError(t, m.panicSurface.ShowModal())
	m, _ = send(m, flushMsg{})
	require.Len(t, m.order, 2)
	assert.Same(t, m.panic, m.top())

	m, _ = press(m, "esc")
	assert.False(t, m.panic.Open())
	assert.True(t, m.about.Open())
	assert.Same(t, m.about, m.top())
}

func TestThemeChangeRestyles(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{})
	tokens := theme.Default()
	tokens.Surface = "navy"

	m, _ = send(m, ThemeChangedMsg{Tokens: tokens})
	assert.Equal(t, "navy", m.about.Subtree().Tokens().Surface)
}

func TestCommandPanicShowsStatus(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{})
	m, _ = send(m, logger.CmdPanicMsg{Value: "boom"})
	assert.Contains(t, screen(m), "A background task failed: boom")

	m, _ = press(m, "a")
	assert.NotContains(t, screen(m), "A background task failed")
}

func TestPollNotifier(t *testing.T) {
	m := newTestModel(t, testConfig(t), Options{Notifier: modal.PollNotifier{}})

	require.NoError(t, m.panicSurface.ShowModal())
	m, _ = send(m, flushMsg{})
	assert.True(t, m.panic.Open())
	assert.Same(t, m.panic, m.top())
}
