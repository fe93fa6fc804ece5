package modal

import (
	"sort"
)

// maxTickRounds bounds how many times Tick re-drains work that was queued
// by tick hooks or by other tasks.
const maxTickRounds = 16

// Scheduler is a cooperative, single-threaded task queue. One call to Tick is
// one scheduler tick: queued tasks run, tick hooks run, and the refresh keys
// requested since the last tick are returned, each at most once.
//
// A Scheduler is not safe for concurrent use. It belongs to the goroutine that
// drives the UI update loop.
type Scheduler struct {
	tasks   []func()
	hooks   []*tickHook
	refresh map[string]struct{}
}

type tickHook struct {
	fn func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{refresh: make(map[string]struct{})}
}

// Queue defers fn to the next tick.
func (s *Scheduler) Queue(fn func()) {
	if fn == nil {
		return
	}
	s.tasks = append(s.tasks, fn)
}

// RequestRefresh marks key for re-rendering. Repeated requests within one
// tick collapse into one.
func (s *Scheduler) RequestRefresh(key string) {
	s.refresh[key] = struct{}{}
}

// OnTick registers fn to run once per tick after queued tasks. The returned
// function removes the hook.
func (s *Scheduler) OnTick(fn func()) (remove func()) {
	h := &tickHook{fn: fn}
	s.hooks = append(s.hooks, h)
	return func() {
		for i, x := range s.hooks {
			if x == h {
				s.hooks = append(s.hooks[:i], s.hooks[i+1:]...)
				return
			}
		}
	}
}

// Pending reports whether any task or refresh request is waiting.
func (s *Scheduler) Pending() bool {
	return len(s.tasks) > 0 || len(s.refresh) > 0
}

// Tick runs one scheduler tick and returns the sorted refresh keys.
func (s *Scheduler) Tick() []string {
	s.drain()

	hooks := make([]*tickHook, len(s.hooks))
	copy(hooks, s.hooks)
	for _, h := range hooks {
		h.fn()
	}

	s.drain()

	if len(s.refresh) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.refresh))
	for k := range s.refresh {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.refresh = make(map[string]struct{})
	return keys
}

func (s *Scheduler) drain() {
	for round := 0; round < maxTickRounds && len(s.tasks) > 0; round++ {
		tasks := s.tasks
		s.tasks = nil
		for _, fn := range tasks {
			fn()
		}
	}
}
