package modal

import (
	"AdminDeck/internal/theme"
	"fmt"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
)

// Optional presenter capabilities, discovered by type assertion.
type (
	// Activator is told when the modal opens and closes. Activate may return
	// a command that starts loading content.
	Activator interface {
		Activate() tea.Cmd
		Deactivate()
	}
	// Updater receives every message routed to the controller.
	Updater interface {
		Update(msg tea.Msg) tea.Cmd
	}
	// Sizer receives the width available to the content.
	Sizer interface {
		SetSize(width, height int)
	}
	// Titler supplies the title drawn in the frame.
	Titler interface {
		Title() string
	}
	// SurfaceBinder is handed the surface once it is known, for presenters
	// that close it through native means such as form submission.
	SurfaceBinder interface {
		BindSurface(s *Surface)
	}
	// Styler is restyled together with the subtree.
	Styler interface {
		SetTokens(t theme.Tokens)
	}
)

var instanceSeq atomic.Uint64

// Controller is one modal instance: a lifecycle variant chosen by ownership
// mode, composed with a render gate. All methods must be called from the UI
// update goroutine.
type Controller struct {
	treeNode

	id             string
	key            string
	mode           OwnershipMode
	size           Size
	closedBy       ClosedBy
	initialOpen    bool
	initialQueued  bool
	lineCharacters bool
	tokens         theme.Tokens
	notifier       Notifier
	sched          *Scheduler
	logger         *log.Logger

	life      Lifecycle
	gate      *Gate
	presenter Presenter
	subtree   *Subtree

	mounted bool
	active  bool
	width   int
	height  int
}

// New creates a controller. The presenter is captured here and never
// replaced. Self-owned controllers create their surface immediately.
func New(mode OwnershipMode, p Presenter, opts ...Option) *Controller {
	c := &Controller{
		mode:           mode,
		size:           DefaultSize,
		closedBy:       ClosedByAny,
		lineCharacters: true,
		tokens:         theme.Default(),
		presenter:      p,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = NewScheduler()
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.key = c.id
	if c.key == "" {
		c.key = fmt.Sprintf("modal-%d", instanceSeq.Add(1))
	}
	c.logger = c.logger.With("modal", c.key)

	switch mode {
	case SelfOwned:
		c.subtree = NewSubtree(c.tokens, c.lineCharacters)
		c.life = newSelfOwned(c.sched, c.notifier, c.observed, c.id, c.closedBy, c.subtree)
		c.bindSurface()
	default:
		c.mode = HostOwned
		c.life = newHostOwned(c.sched, c.notifier, c.observed)
	}
	c.gate = NewGate(p, c.life.Open)
	if s, ok := p.(Styler); ok {
		s.SetTokens(c.tokens)
	}
	return c
}

// Name implements Node.
func (c *Controller) Name() string {
	if c.id != "" {
		return "modal#" + c.id
	}
	return "modal"
}

// Key is the refresh key this controller requests on the scheduler.
func (c *Controller) Key() string { return c.key }

// ID returns the configured id.
func (c *Controller) ID() string { return c.id }

// Mode returns the ownership mode.
func (c *Controller) Mode() OwnershipMode { return c.mode }

// Size returns the size token.
func (c *Controller) Size() Size { return c.size }

// Surface returns the surface in use (nil for an unmounted host-owned controller).
func (c *Controller) Surface() *Surface { return c.life.Surface() }

// Subtree returns the isolated subtree of a self-owned controller, or nil.
func (c *Controller) Subtree() *Subtree { return c.subtree }

// Presenter returns the captured presenter.
func (c *Controller) Presenter() Presenter { return c.presenter }

// Scheduler returns the scheduler the controller queues work on.
func (c *Controller) Scheduler() *Scheduler { return c.sched }

// Mounted reports whether Mount succeeded and Unmount has not run since.
func (c *Controller) Mounted() bool { return c.mounted }

// Open reports the current state, read from the lifecycle.
func (c *Controller) Open() bool { return c.life.Open() }

// State returns Open() as a State.
func (c *Controller) State() State { return stateOf(c.life.Open()) }

// Mount attaches the controller. A host-owned controller must be mounted
// directly into a *Surface; anything else is a *StructuralError and leaves
// nothing attached. A self-owned controller attaches its surface to host.
func (c *Controller) Mount(host Container) error {
	if c.mounted {
		return ErrAlreadyMounted
	}
	if err := c.life.mount(host, c); err != nil {
		c.logger.Debug("Mount refused", "host", nameOf(host), "error", err)
		return err
	}
	c.mounted = true
	c.bindSurface()
	c.logger.Debug("Mounted", "mode", c.mode, "host", nameOf(host), "open", c.Open())
	return nil
}

// Unmount detaches every listener and watcher. A self-owned surface is closed
// and removed from the host; a host-owned surface is left as it is.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.deactivate()
	c.life.unmount()
	c.mounted = false
	c.logger.Debug("Unmounted")
}

// Dispose unmounts and releases the surface for good.
func (c *Controller) Dispose() {
	c.Unmount()
	c.life.dispose()
}

// Show opens the modal. Showing an open modal does nothing.
func (c *Controller) Show() {
	c.SetOpen(true)
}

// Close closes the modal. Closing a closed modal does nothing.
func (c *Controller) Close() {
	c.SetOpen(false)
}

// CloseWith closes the modal with a return value.
func (c *Controller) CloseWith(returnValue string) {
	c.life.CloseWith(returnValue)
	c.logger.Debug("Closed", "returnValue", returnValue)
	c.sched.RequestRefresh(c.key)
}

// SetOpen drives the surface to the requested state.
func (c *Controller) SetOpen(open bool) {
	if err := c.life.SetOpen(open); err != nil {
		c.logger.Warn("Cannot change modal state", "open", open, "error", err)
		return
	}
	c.logger.Debug("State set", "open", open, "now", c.State())
	c.sched.RequestRefresh(c.key)
}

// SetSize records the terminal area the modal is drawn over.
func (c *Controller) SetSize(width, height int) {
	c.width, c.height = width, height
	if s, ok := c.presenter.(Sizer); ok {
		s.SetSize(c.contentWidth(), height)
	}
}

// SetTokens restyles the isolated subtree.
func (c *Controller) SetTokens(t theme.Tokens) {
	c.tokens = t
	if c.subtree != nil {
		c.subtree.SetTokens(t)
	}
	if s, ok := c.presenter.(Styler); ok {
		s.SetTokens(t)
	}
	c.sched.RequestRefresh(c.key)
}

// FrameWidth is the outer width of the drawn frame.
func (c *Controller) FrameWidth() int {
	w := c.size.Width()
	if c.width > 0 && w > c.width-2 {
		w = c.width - 2
	}
	if w < 10 {
		w = 10
	}
	if c.width > 0 && w > c.width {
		w = max(c.width, 1)
	}
	return w
}

func (c *Controller) contentWidth() int {
	return max(c.FrameWidth()-2, 1)
}

// Title returns the presenter's title, if it has one.
func (c *Controller) Title() string {
	if t, ok := c.presenter.(Titler); ok {
		return t.Title()
	}
	return ""
}

// Render evaluates the gate. Closed modals render "". Self-owned content is
// framed by the subtree; host-owned content is returned bare for the host to
// place in its own surface. With WithInitialOpen the first render queues one
// Show on the scheduler.
func (c *Controller) Render() string {
	if c.initialOpen && !c.initialQueued && c.mounted {
		c.initialQueued = true
		c.sched.Queue(func() {
			if c.mounted {
				c.Show()
			}
		})
	}
	body := c.gate.Render()
	if body == "" {
		return ""
	}
	if c.subtree != nil {
		return c.subtree.Frame(c.Title(), body, c.FrameWidth())
	}
	return body
}

// Sync brings the presenter's activation in line with the current state. The
// host calls it after each scheduler tick for the keys that were refreshed.
func (c *Controller) Sync() tea.Cmd {
	open := c.Open()
	switch {
	case open && !c.active:
		c.active = true
		c.logger.Debug("Activating content")
		if a, ok := c.presenter.(Activator); ok {
			return a.Activate()
		}
	case !open && c.active:
		c.deactivate()
	}
	return nil
}

// Update routes a message to the presenter.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	if u, ok := c.presenter.(Updater); ok {
		return u.Update(msg)
	}
	return nil
}

func (c *Controller) deactivate() {
	if !c.active {
		return
	}
	c.active = false
	c.logger.Debug("Deactivating content")
	if a, ok := c.presenter.(Activator); ok {
		a.Deactivate()
	}
}

func (c *Controller) bindSurface() {
	s := c.life.Surface()
	if s == nil {
		return
	}
	if b, ok := c.presenter.(SurfaceBinder); ok {
		b.BindSurface(s)
	}
}

// observed runs when the notifier reports an out-of-band change.
func (c *Controller) observed(open bool) {
	c.logger.Debug("Surface changed", "open", open)
	c.sched.RequestRefresh(c.key)
}
