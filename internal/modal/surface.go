package modal

import (
	"sort"
)

// Attribute names understood by Surface.
const (
	AttrOpen        = "open"
	AttrID          = "id"
	AttrLabelledBy  = "aria-labelledby"
	AttrDescribedBy = "aria-describedby"
	AttrClosedBy    = "closedby"

	defaultLabelledBy  = "modal-title"
	defaultDescribedBy = "modal-description"
	surfaceTagName     = "dialog"
	eventToggle        = "toggle"
)

// Event is dispatched to toggle listeners.
type Event interface {
	Type() string
}

// ToggleEvent is the structured toggle notification. OldState and NewState
// are "open" or "closed".
type ToggleEvent struct {
	OldState string
	NewState string
}

// Type implements Event.
func (ToggleEvent) Type() string { return eventToggle }

// BasicEvent is an event without state payload. Surfaces built with
// WithLegacyEvents dispatch toggles as BasicEvent.
type BasicEvent struct {
	Name string
}

// Type implements Event.
func (e BasicEvent) Type() string { return e.Name }

// PointerEvent is dispatched to pointer-down listeners. Target is the node
// that was hit, CurrentTarget the surface the listener is registered on.
type PointerEvent struct {
	Target        Node
	CurrentTarget Node
}

type toggleListener struct{ fn func(Event) }
type pointerListener struct{ fn func(PointerEvent) }

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithLegacyEvents makes the surface dispatch toggles as bare BasicEvent
// values, like runtimes that predate structured toggle events.
func WithLegacyEvents() SurfaceOption {
	return func(s *Surface) {
		s.legacy = true
	}
}

// WithAttr presets an attribute. Presetting "open" creates the surface open.
func WithAttr(name, value string) SurfaceOption {
	return func(s *Surface) {
		s.attrs[name] = value
		if name == AttrOpen {
			s.open = true
		}
	}
}

// Surface is the native modal dialog primitive. It carries its own open flag
// and return value, and can be opened or closed by anyone holding a
// reference: the host page, the user (Esc, backdrop, form submission) or the
// controller that claims it.
//
// Toggle events are delivered on the next scheduler tick. Several flips in
// one tick produce a single event carrying the first old state and the last
// new state, and no event at all when they cancel out.
type Surface struct {
	treeNode
	sched *Scheduler

	open        bool
	returnValue string
	attrs       map[string]string
	legacy      bool

	toggles  []*toggleListener
	pointers []*pointerListener
	watchers []*Watcher

	pending *ToggleEvent
	owner   any
}

// NewSurface creates a detached, closed surface. Events are delivered on
// sched; a nil sched gets a private scheduler that only the caller can tick
// through Scheduler().
func NewSurface(sched *Scheduler, opts ...SurfaceOption) *Surface {
	if sched == nil {
		sched = NewScheduler()
	}
	s := &Surface{
		sched: sched,
		attrs: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Node.
func (s *Surface) Name() string { return surfaceTagName }

// AppendChild implements Container.
func (s *Surface) AppendChild(child Node) {
	s.appendChild(s, child)
}

// RemoveChild implements Container.
func (s *Surface) RemoveChild(child Node) {
	s.removeChild(child)
}

// Scheduler returns the scheduler events are delivered on.
func (s *Surface) Scheduler() *Scheduler { return s.sched }

// IsOpen reports the native open flag.
func (s *Surface) IsOpen() bool { return s.open }

// ReturnValue is the value supplied by the last close that carried one.
func (s *Surface) ReturnValue() string { return s.returnValue }

// ID returns the id attribute.
func (s *Surface) ID() string { return s.attrs[AttrID] }

// Attr returns an attribute and whether it is present.
func (s *Surface) Attr(name string) (string, bool) {
	v, ok := s.attrs[name]
	return v, ok
}

// Attrs returns the attribute names in sorted order.
func (s *Surface) Attrs() []string {
	names := make([]string, 0, len(s.attrs))
	for k := range s.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SetAttr sets an attribute. Setting "open" opens the surface in place,
// the way a host page toggles a dialog by attribute.
func (s *Surface) SetAttr(name, value string) {
	if name == AttrOpen {
		s.setOpen(true)
		return
	}
	s.writeAttr(name, value)
}

// RemoveAttr removes an attribute. Removing "open" closes the surface.
func (s *Surface) RemoveAttr(name string) {
	if name == AttrOpen {
		s.setOpen(false)
		return
	}
	s.deleteAttr(name)
}

// ClosedBy returns the surface dismissal policy.
func (s *Surface) ClosedBy() ClosedBy {
	v, err := ParseClosedBy(s.attrs[AttrClosedBy])
	if err != nil {
		return ClosedByAny
	}
	return v
}

// ShowModal opens the surface as a blocking modal. It fails if the surface is
// not attached to anything and is a no-op when already open.
func (s *Surface) ShowModal() error {
	if s.parent == nil {
		return ErrNotConnected
	}
	if s.open {
		return nil
	}
	s.setOpen(true)
	return nil
}

// Close closes the surface, keeping the previous return value.
func (s *Surface) Close() {
	s.setOpen(false)
}

// CloseWith closes the surface and records rv as its return value.
// Closing a closed surface does nothing.
func (s *Surface) CloseWith(rv string) {
	if !s.open {
		return
	}
	s.returnValue = rv
	s.setOpen(false)
}

// RequestClose is the user's Esc. It honors the closedby policy and reports
// whether the surface closed.
func (s *Surface) RequestClose() bool {
	if !s.open || s.ClosedBy() == ClosedByNone {
		return false
	}
	s.Close()
	return true
}

// LightDismiss is a pointer-down on the backdrop. Only the "any" policy lets
// it close the surface. It reports whether the surface closed.
func (s *Surface) LightDismiss() bool {
	if !s.open || s.ClosedBy() != ClosedByAny {
		return false
	}
	s.Close()
	return true
}

// Submit is a native form submission inside the surface; it closes the
// surface with rv as the return value.
func (s *Surface) Submit(rv string) {
	s.CloseWith(rv)
}

// PointerDown dispatches a pointer-down hit on target to the listeners
// registered on this surface.
func (s *Surface) PointerDown(target Node) {
	ev := PointerEvent{Target: target, CurrentTarget: s}
	listeners := make([]*pointerListener, len(s.pointers))
	copy(listeners, s.pointers)
	for _, l := range listeners {
		l.fn(ev)
	}
}

// OnToggle registers a toggle listener and returns its remover.
func (s *Surface) OnToggle(fn func(Event)) (remove func()) {
	l := &toggleListener{fn: fn}
	s.toggles = append(s.toggles, l)
	return func() {
		for i, x := range s.toggles {
			if x == l {
				s.toggles = append(s.toggles[:i], s.toggles[i+1:]...)
				return
			}
		}
	}
}

// OnPointerDown registers a pointer-down listener and returns its remover.
func (s *Surface) OnPointerDown(fn func(PointerEvent)) (remove func()) {
	l := &pointerListener{fn: fn}
	s.pointers = append(s.pointers, l)
	return func() {
		for i, x := range s.pointers {
			if x == l {
				s.pointers = append(s.pointers[:i], s.pointers[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of toggle listeners, pointer listeners and
// attribute watchers currently attached.
func (s *Surface) ListenerCount() (toggles, pointers, watchers int) {
	return len(s.toggles), len(s.pointers), len(s.watchers)
}

func (s *Surface) claim(owner any) error {
	if s.owner != nil && s.owner != owner {
		return ErrSurfaceClaimed
	}
	s.owner = owner
	return nil
}

func (s *Surface) release(owner any) {
	if s.owner == owner {
		s.owner = nil
	}
}

func (s *Surface) setOpen(open bool) {
	if s.open == open {
		return
	}
	old := stateOf(s.open)
	s.open = open
	if open {
		s.writeAttr(AttrOpen, "")
	} else {
		s.deleteAttr(AttrOpen)
	}
	s.queueToggle(old, stateOf(open))
}

func (s *Surface) writeAttr(name, value string) {
	old, had := s.attrs[name]
	if had && old == value {
		return
	}
	s.attrs[name] = value
	s.notify(Record{Surface: s, Attribute: name, OldValue: old, HadValue: had})
}

func (s *Surface) deleteAttr(name string) {
	old, had := s.attrs[name]
	if !had {
		return
	}
	delete(s.attrs, name)
	s.notify(Record{Surface: s, Attribute: name, OldValue: old, HadValue: true, Removed: true})
}

func (s *Surface) notify(r Record) {
	watchers := make([]*Watcher, len(s.watchers))
	copy(watchers, s.watchers)
	for _, w := range watchers {
		w.enqueue(r)
	}
}

func (s *Surface) addWatcher(w *Watcher) {
	for _, x := range s.watchers {
		if x == w {
			return
		}
	}
	s.watchers = append(s.watchers, w)
}

func (s *Surface) removeWatcher(w *Watcher) {
	for i, x := range s.watchers {
		if x == w {
			s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
			return
		}
	}
}

func (s *Surface) queueToggle(old, next State) {
	if s.pending != nil {
		s.pending.NewState = next.String()
		return
	}
	s.pending = &ToggleEvent{OldState: old.String(), NewState: next.String()}
	s.sched.Queue(s.fireToggle)
}

func (s *Surface) fireToggle() {
	ev := s.pending
	s.pending = nil
	if ev == nil || ev.OldState == ev.NewState {
		return
	}
	var out Event = *ev
	if s.legacy {
		out = BasicEvent{Name: eventToggle}
	}
	listeners := make([]*toggleListener, len(s.toggles))
	copy(listeners, s.toggles)
	for _, l := range listeners {
		l.fn(out)
	}
}
