package modal

// Lifecycle keeps a controller's open state consistent with its surface.
// Controller-initiated mutations take effect synchronously; Show while open
// and Close while closed do nothing.
type Lifecycle interface {
	Mode() OwnershipMode
	// Open reports the current state.
	Open() bool
	// SetOpen drives the surface towards open.
	SetOpen(open bool) error
	Show() error
	Close()
	// CloseWith closes and records a return value on the surface.
	CloseWith(returnValue string)
	// Surface returns the surface in use, or nil for a host-owned lifecycle
	// that is not mounted.
	Surface() *Surface

	mount(host Container, self Node) error
	unmount()
	dispose()
}

type observeFunc func(open bool)

// hostOwned wraps a surface created by the host page. The controller must be
// mounted directly inside it.
type hostOwned struct {
	sched    *Scheduler
	notifier Notifier
	onChange observeFunc

	parent *Surface
	self   Node
	cancel func()
}

func newHostOwned(sched *Scheduler, notifier Notifier, onChange observeFunc) *hostOwned {
	if notifier == nil {
		notifier = ToggleNotifier{}
	}
	return &hostOwned{sched: sched, notifier: notifier, onChange: onChange}
}

func (h *hostOwned) Mode() OwnershipMode { return HostOwned }

func (h *hostOwned) Surface() *Surface { return h.parent }

// Open reads the parent's flag every time; there is no cached copy to drift.
func (h *hostOwned) Open() bool {
	return h.parent != nil && h.parent.IsOpen()
}

func (h *hostOwned) SetOpen(open bool) error {
	if open {
		return h.Show()
	}
	h.Close()
	return nil
}

func (h *hostOwned) Show() error {
	if h.parent == nil {
		return ErrNotConnected
	}
	return h.parent.ShowModal()
}

func (h *hostOwned) Close() {
	if h.parent != nil {
		h.parent.Close()
	}
}

func (h *hostOwned) CloseWith(rv string) {
	if h.parent != nil {
		h.parent.CloseWith(rv)
	}
}

func (h *hostOwned) mount(host Container, self Node) error {
	s, ok := host.(*Surface)
	if !ok || s == nil {
		return &StructuralError{Component: self.Name(), Found: nameOf(host)}
	}
	if err := s.claim(h); err != nil {
		return err
	}
	s.AppendChild(self)
	h.parent = s
	h.self = self
	h.cancel = h.notifier.Subscribe(s, h.sched, h.onChange)
	return nil
}

// unmount detaches everything mount attached and leaves the surface as is.
func (h *hostOwned) unmount() {
	if h.parent == nil {
		return
	}
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.parent.RemoveChild(h.self)
	h.parent.release(h)
	h.parent = nil
	h.self = nil
}

func (h *hostOwned) dispose() {
	h.unmount()
}

// selfOwned creates and owns its surface for its whole life. Content lives in
// an isolated Subtree attached to that surface.
type selfOwned struct {
	sched    *Scheduler
	notifier Notifier
	onChange observeFunc

	surface       *Surface
	subtree       *Subtree
	removePointer func()
	cancel        func()
}

func newSelfOwned(sched *Scheduler, notifier Notifier, onChange observeFunc, id string, closedBy ClosedBy, subtree *Subtree) *selfOwned {
	if notifier == nil {
		notifier = AttributeNotifier{}
	}
	s := NewSurface(sched,
		WithAttr(AttrLabelledBy, defaultLabelledBy),
		WithAttr(AttrDescribedBy, defaultDescribedBy),
		WithAttr(AttrClosedBy, string(closedBy)),
	)
	if id != "" {
		s.SetAttr(AttrID, id)
	}
	so := &selfOwned{
		sched:    sched,
		notifier: notifier,
		onChange: onChange,
		surface:  s,
		subtree:  subtree,
	}
	so.removePointer = s.OnPointerDown(so.backdropDown)
	s.AppendChild(subtree)
	_ = s.claim(so)
	return so
}

// backdropDown closes the surface on a pointer-down that hit the surface
// itself, which is what a click outside the content box looks like.
func (so *selfOwned) backdropDown(ev PointerEvent) {
	if ev.Target != ev.CurrentTarget {
		return
	}
	so.surface.LightDismiss()
}

func (so *selfOwned) Mode() OwnershipMode { return SelfOwned }

func (so *selfOwned) Surface() *Surface { return so.surface }

func (so *selfOwned) Open() bool { return so.surface.IsOpen() }

// SetOpen only shows the surface once it is attached somewhere; before that
// a request to open is dropped.
func (so *selfOwned) SetOpen(open bool) error {
	if !open {
		so.surface.Close()
		return nil
	}
	if so.surface.Parent() == nil {
		return nil
	}
	return so.surface.ShowModal()
}

func (so *selfOwned) Show() error { return so.SetOpen(true) }

func (so *selfOwned) Close() { _ = so.SetOpen(false) }

func (so *selfOwned) CloseWith(rv string) {
	so.surface.CloseWith(rv)
}

func (so *selfOwned) mount(host Container, _ Node) error {
	if host == nil {
		return ErrNoHost
	}
	host.AppendChild(so.surface)
	so.cancel = so.notifier.Subscribe(so.surface, so.sched, so.onChange)
	return nil
}

// unmount stops observation, closes the surface and takes it off the host.
func (so *selfOwned) unmount() {
	if so.cancel != nil {
		so.cancel()
		so.cancel = nil
	}
	so.surface.Close()
	if p, ok := so.surface.Parent().(Container); ok {
		p.RemoveChild(so.surface)
	}
}

func (so *selfOwned) dispose() {
	so.unmount()
	if so.removePointer != nil {
		so.removePointer()
		so.removePointer = nil
	}
	so.surface.release(so)
}
