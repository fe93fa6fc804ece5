package tui

import (
	"AdminDeck/internal/config"
	"AdminDeck/internal/constants"
	"AdminDeck/internal/content"
	"AdminDeck/internal/logger"
	"AdminDeck/internal/modal"
	"AdminDeck/internal/theme"
	"AdminDeck/internal/version"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
)

// Modal ids. They double as refresh keys and as result routing keys.
const (
	AboutID        = "about-dialog"
	PanicID        = "panic-form"
	PanicSurfaceID = "panic-dialog"
)

const panicPrompt = "Describe why you are entering panic mode.\nEvery entry is recorded in the audit log."

// maxFlushRounds bounds how often one update drains the scheduler.
const maxFlushRounds = 4

type (
	// ThemeChangedMsg carries reloaded theme tokens.
	ThemeChangedMsg struct {
		Tokens theme.Tokens
	}

	// flushMsg asks the model to drain the scheduler once.
	flushMsg struct{}
)

// Options are the start-up choices made on the command line.
type Options struct {
	Open     string // constants.OpenAbout, constants.OpenPanic or ""
	Size     modal.Size
	Notifier modal.Notifier
	Flags    []string // shown in the header
}

// AppModel is the root Bubble Tea model: a page with an about modal that owns
// its surface and a panic-mode form placed in a surface the page owns.
type AppModel struct {
	ctx    context.Context
	config config.AppConfig
	logger *log.Logger

	// Terminal dimensions
	width  int
	height int

	tokens   theme.Tokens
	styles   Styles
	header   HeaderModel
	helpline HelplineModel

	sched        *modal.Scheduler
	page         *modal.Element
	panicSurface *modal.Surface
	about        *modal.Controller
	panic        *modal.Controller

	// open modals, bottom to top
	order []*modal.Controller
}

// NewAppModel builds the page and mounts both modals. A structural mistake in
// how the modals are placed is fatal.
func NewAppModel(ctx context.Context, cfg config.AppConfig, tokens theme.Tokens, opts Options) AppModel {
	l := logger.FromContext(ctx)
	brand := content.Brand{Title: cfg.Brand.Title, Icon: cfg.Brand.Icon, Licensed: cfg.Brand.Licensed}

	m := AppModel{
		ctx:      ctx,
		config:   cfg,
		logger:   l,
		tokens:   tokens,
		styles:   NewStyles(tokens, cfg.UI),
		header:   NewHeaderModel(brand.Product(), opts.Flags...),
		helpline: NewHelplineModel(),
		sched:    modal.NewScheduler(),
		page:     modal.NewElement("page"),
	}
	m.header.SetTheme(cfg.UI.Theme)

	size := opts.Size
	if size == "" {
		size, _ = modal.ParseSize(cfg.Modal.Size)
	}
	closedBy, _ := modal.ParseClosedBy(cfg.Modal.ClosedBy)

	common := []modal.Option{
		modal.WithScheduler(m.sched),
		modal.WithLogger(l),
		modal.WithTokens(tokens),
		modal.WithSize(size),
		modal.WithLineCharacters(cfg.UI.LineCharacters),
	}
	if opts.Notifier != nil {
		common = append(common, modal.WithNotifier(opts.Notifier))
	}

	build := content.BuildInfo{
		Version:   version.Version,
		UIVersion: version.UIVersion,
		Commit:    version.Commit,
		RepoURL:   version.RepoURL,
		Debug:     version.IsDebug(),
	}
	aboutOpts := slices.Concat(common, []modal.Option{modal.WithID(AboutID), modal.WithClosedBy(closedBy)})
	if opts.Open == constants.OpenAbout {
		aboutOpts = append(aboutOpts, modal.WithInitialOpen())
	}
	m.about = modal.New(modal.SelfOwned, content.NewAboutPanel(ctx, AboutID, brand, content.SystemProvider(build), l), aboutOpts...)

	// The page owns the panic surface and decides its dismissal policy.
	ps := modal.NewSurface(m.sched,
		modal.WithAttr(modal.AttrID, PanicSurfaceID),
		modal.WithAttr(modal.AttrClosedBy, string(closedBy)),
	)
	ps.OnPointerDown(func(ev modal.PointerEvent) {
		if ev.Target == ev.CurrentTarget {
			ps.LightDismiss()
		}
	})
	m.page.AppendChild(ps)
	m.panicSurface = ps

	form := content.NewReasonForm(ctx, PanicID, "Panic mode", panicPrompt, content.AuditSubmitter{Path: cfg.AuditFile}, l)
	panicOpts := slices.Concat(common, []modal.Option{modal.WithID(PanicID)})
	if opts.Open == constants.OpenPanic {
		panicOpts = append(panicOpts, modal.WithInitialOpen())
	}
	m.panic = modal.New(modal.HostOwned, form, panicOpts...)

	m.mount(m.about, m.page)
	m.mount(m.panic, m.panicSurface)

	// First render: queues the initial open, if one was asked for.
	m.about.Render()
	m.panic.Render()

	m.updateHelp()
	return m
}

func (m AppModel) mount(c *modal.Controller, host modal.Container) {
	err := c.Mount(host)
	if err == nil {
		return
	}
	var se *modal.StructuralError
	if errors.As(err, &se) {
		logger.Fatal(m.ctx, "Modal placed incorrectly", "modal", c.Key(), "error", err)
	}
	logger.Error(m.ctx, "Modal could not be mounted", "modal", c.Key(), "error", err)
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return func() tea.Msg { return flushMsg{} }
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer logger.Recover(m.ctx)

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header.SetWidth(msg.Width)
		contentHeight := max(msg.Height-pageChromeHeight, 1)
		m.about.SetSize(msg.Width, contentHeight)
		m.panic.SetSize(msg.Width, contentHeight)

	case flushMsg:

	case ThemeChangedMsg:
		m.setTokens(msg.Tokens)

	case logger.CmdPanicMsg:
		m.helpline.SetStatus(fmt.Sprintf("A background task failed: %v", msg.Value))

	case tea.KeyPressMsg:
		m.helpline.SetStatus("")
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.MouseClickMsg:
		m.handleClick(msg.Mouse())

	default:
		// Async results and spinner ticks; presenters drop what isn't theirs.
		cmds = append(cmds, m.about.Update(msg), m.panic.Update(msg))
	}

	cmds = append(cmds, m.flush()...)
	return m, m.recover(cmds)
}

func (m *AppModel) handleKey(msg tea.KeyPressMsg) (cmd tea.Cmd, quit bool) {
	if key.Matches(msg, Keys.ForceQuit) {
		return nil, true
	}

	if top := m.top(); top != nil {
		if key.Matches(msg, Keys.Esc) {
			if !top.Surface().RequestClose() {
				m.logger.Debug("Close request refused", "modal", top.Key(), "closedby", top.Surface().ClosedBy())
			}
			return nil, false
		}
		return top.Update(msg), false
	}

	switch {
	case key.Matches(msg, Keys.About):
		m.about.Show()
	case key.Matches(msg, Keys.Panic):
		if err := m.panicSurface.ShowModal(); err != nil {
			logger.Warn(m.ctx, "Panic dialog could not be shown", "error", err)
		}
	case key.Matches(msg, Keys.Theme):
		tokens, err := theme.Load(m.config.UI.Theme)
		if err != nil {
			m.helpline.SetStatus("Theme reload failed: " + err.Error())
		}
		m.setTokens(tokens)
	case key.Matches(msg, Keys.Quit):
		return nil, true
	}
	return nil, false
}

// handleClick dispatches a pointer-down to the topmost surface. Clicks inside
// the frame target the content; clicks outside it target the surface itself,
// which is how a backdrop click reaches the dismissal policy.
func (m *AppModel) handleClick(mouse tea.Mouse) {
	if mouse.Button != tea.MouseLeft {
		return
	}
	top := m.top()
	if top == nil {
		return
	}
	s := top.Surface()
	r, ok := m.modalRect(top)
	if ok && r.Contains(mouse.X, mouse.Y) {
		var target modal.Node = top
		if st := top.Subtree(); st != nil {
			target = st.BodyNode()
		}
		s.PointerDown(target)
		return
	}
	s.PointerDown(s)
}

func (m *AppModel) setTokens(t theme.Tokens) {
	m.tokens = t
	m.styles = NewStyles(t, m.config.UI)
	m.about.SetTokens(t)
	m.panic.SetTokens(t)
}

// flush drains the scheduler and brings presenters in line with the state of
// every modal that requested a refresh.
func (m *AppModel) flush() []tea.Cmd {
	var cmds []tea.Cmd
	for range maxFlushRounds {
		keys := m.sched.Tick()
		if len(keys) == 0 {
			break
		}
		for _, k := range keys {
			c := m.controller(k)
			if c == nil {
				continue
			}
			cmds = append(cmds, c.Sync())
			m.track(c)
		}
	}
	m.updateHelp()
	return cmds
}

func (m *AppModel) controller(key string) *modal.Controller {
	switch key {
	case m.about.Key():
		return m.about
	case m.panic.Key():
		return m.panic
	}
	return nil
}

// track keeps order in step with c's state; a modal that opens goes on top.
func (m *AppModel) track(c *modal.Controller) {
	open := c.Open()
	i := slices.Index(m.order, c)
	switch {
	case open && i < 0:
		m.order = append(m.order, c)
	case !open && i >= 0:
		m.order = slices.Delete(m.order, i, i+1)
	}
}

func (m AppModel) top() *modal.Controller {
	if len(m.order) == 0 {
		return nil
	}
	return m.order[len(m.order)-1]
}

func (m *AppModel) updateHelp() {
	if m.top() != nil {
		m.helpline.SetBindings(Keys.ModalHelp())
	} else {
		m.helpline.SetBindings(Keys.ShortHelp())
	}
}

func (m AppModel) recover(cmds []tea.Cmd) tea.Cmd {
	wrapped := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			wrapped = append(wrapped, logger.RecoverTUI(m.ctx, c))
		}
	}
	return tea.Batch(wrapped...)
}

// renderModal draws c as it appears on the page. The frame size excludes the
// shadow.
func (m AppModel) renderModal(c *modal.Controller) (block string, frameW, frameH int) {
	body := c.Render()
	if body == "" {
		return "", 0, 0
	}
	if c.Mode() == modal.HostOwned {
		body = RenderDialog(m.styles, c.Title(), body, c.FrameWidth())
	}
	frameW, frameH = blockSize(body)
	return m.styles.AddShadow(body), frameW, frameH
}

// placement is where block goes inside the content area.
func (m AppModel) placement(block string) Rect {
	w, h := blockSize(block)
	return Place(w, h, m.width, max(m.height-pageChromeHeight, 1), OverlayCenter, OverlayCenter, 0, 0)
}

// modalRect is the screen rectangle of c's frame.
func (m AppModel) modalRect(c *modal.Controller) (Rect, bool) {
	block, fw, fh := m.renderModal(c)
	if block == "" {
		return Rect{}, false
	}
	r := m.placement(block)
	return Rect{X: r.X, Y: r.Y + contentTop, W: fw, H: fh}, true
}

func (m AppModel) body() string {
	accent := lipgloss.NewStyle().Foreground(theme.Color(m.tokens.Accent)).Bold(true)
	lines := []string{
		accent.Render(content.Brand{Title: m.config.Brand.Title, Icon: m.config.Brand.Icon, Licensed: m.config.Brand.Licensed}.Heading()),
		"",
	}
	for _, b := range Keys.ShortHelp() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-3s %s", h.Key, h.Desc))
	}
	if rv := m.panicSurface.ReturnValue(); rv != "" {
		lines = append(lines, "", "Last panic-mode request: "+rv)
	}
	return strings.Join(lines, "\n")
}

// View implements tea.Model
func (m AppModel) View() tea.View {
	page, area := RenderPage(m.styles, m.header, m.helpline, m.body(), m.width, m.height)
	if area != "" {
		for _, c := range m.order {
			block, _, _ := m.renderModal(c)
			if block == "" {
				continue
			}
			area = OverlayAt(block, area, m.placement(block))
		}
		page = ReplaceContent(page, area)
	}
	v := tea.NewView(page)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}
