package modal

// Record describes one attribute mutation on a surface.
type Record struct {
	Surface   *Surface
	Attribute string
	OldValue  string
	HadValue  bool
	Removed   bool
}

type watchTarget struct {
	surface *Surface
	filter  map[string]bool
}

// Watcher observes attribute mutations on surfaces. Mutations are batched and
// handed to the callback once per scheduler tick, in the order they happened.
type Watcher struct {
	sched   *Scheduler
	cb      func([]Record)
	targets []*watchTarget
	records []Record
	queued  bool
}

// NewWatcher creates a watcher that delivers batches on sched.
func NewWatcher(sched *Scheduler, cb func([]Record)) *Watcher {
	return &Watcher{sched: sched, cb: cb}
}

// Observe starts watching s. With no attrs every attribute is reported.
// Observing a surface again replaces its filter.
func (w *Watcher) Observe(s *Surface, attrs ...string) {
	var filter map[string]bool
	if len(attrs) > 0 {
		filter = make(map[string]bool, len(attrs))
		for _, a := range attrs {
			filter[a] = true
		}
	}
	for _, t := range w.targets {
		if t.surface == s {
			t.filter = filter
			return
		}
	}
	w.targets = append(w.targets, &watchTarget{surface: s, filter: filter})
	s.addWatcher(w)
}

// Disconnect stops all observation and drops undelivered records.
func (w *Watcher) Disconnect() {
	for _, t := range w.targets {
		t.surface.removeWatcher(w)
	}
	w.targets = nil
	w.records = nil
}

// TakeRecords returns and clears the undelivered records.
func (w *Watcher) TakeRecords() []Record {
	recs := w.records
	w.records = nil
	return recs
}

func (w *Watcher) enqueue(r Record) {
	var target *watchTarget
	for _, t := range w.targets {
		if t.surface == r.Surface {
			target = t
			break
		}
	}
	if target == nil || (target.filter != nil && !target.filter[r.Attribute]) {
		return
	}
	w.records = append(w.records, r)
	if w.queued {
		return
	}
	w.queued = true
	w.sched.Queue(w.deliver)
}

func (w *Watcher) deliver() {
	w.queued = false
	recs := w.TakeRecords()
	if len(recs) == 0 || w.cb == nil {
		return
	}
	w.cb(recs)
}

// Notifier is a channel through which a controller learns that its surface
// changed state without its involvement. fn receives the surface's open flag
// as read at delivery time. The returned cancel detaches everything Subscribe
// attached.
type Notifier interface {
	Subscribe(s *Surface, sched *Scheduler, fn func(open bool)) (cancel func())
}

// AttributeNotifier watches the "open" attribute.
type AttributeNotifier struct{}

// Subscribe implements Notifier.
func (AttributeNotifier) Subscribe(s *Surface, sched *Scheduler, fn func(open bool)) func() {
	w := NewWatcher(sched, func([]Record) {
		fn(s.IsOpen())
	})
	w.Observe(s, AttrOpen)
	return w.Disconnect
}

// ToggleNotifier listens for toggle events. Structured events are trusted for
// the new state; bare events cause the flag to be re-read.
type ToggleNotifier struct{}

// Subscribe implements Notifier.
func (ToggleNotifier) Subscribe(s *Surface, _ *Scheduler, fn func(open bool)) func() {
	return s.OnToggle(func(ev Event) {
		if te, ok := ev.(ToggleEvent); ok {
			fn(te.NewState == StateOpen.String())
			return
		}
		fn(s.IsOpen())
	})
}

// PollNotifier compares the open flag on every scheduler tick. It suits
// surfaces whose changes produce no events at all.
type PollNotifier struct{}

// Subscribe implements Notifier.
func (PollNotifier) Subscribe(s *Surface, sched *Scheduler, fn func(open bool)) func() {
	last := s.IsOpen()
	return sched.OnTick(func() {
		if cur := s.IsOpen(); cur != last {
			last = cur
			fn(cur)
		}
	})
}

// NotifierByName maps a configuration value to a Notifier. Empty selects nil,
// which leaves the per-mode default in place.
func NotifierByName(name string) (Notifier, bool) {
	switch name {
	case "":
		return nil, true
	case "attribute":
		return AttributeNotifier{}, true
	case "toggle":
		return ToggleNotifier{}, true
	case "poll":
		return PollNotifier{}, true
	}
	return nil, false
}
