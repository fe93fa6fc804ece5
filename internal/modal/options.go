package modal

import (
	"AdminDeck/internal/theme"

	"charm.land/log/v2"
)

// Option configures a Controller.
type Option func(*Controller)

// WithID sets the instance id. Self-owned controllers copy it onto the
// surface's id attribute; it also becomes the refresh key.
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// WithInitialOpen opens the modal after its first render.
func WithInitialOpen() Option {
	return func(c *Controller) {
		c.initialOpen = true
	}
}

// WithSize sets the size token.
func WithSize(s Size) Option {
	return func(c *Controller) {
		if s != "" {
			c.size = s
		}
	}
}

// WithClosedBy sets which user actions may dismiss a self-owned surface.
func WithClosedBy(cb ClosedBy) Option {
	return func(c *Controller) {
		if cb != "" {
			c.closedBy = cb
		}
	}
}

// WithScheduler shares a scheduler with the host. Controllers otherwise get
// a private one.
func WithScheduler(s *Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// WithLogger sets the logger used for lifecycle tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithTokens sets the design tokens used by the isolated subtree.
func WithTokens(t theme.Tokens) Option {
	return func(c *Controller) {
		c.tokens = t
	}
}

// WithNotifier replaces the default observation channel (toggle events for
// host-owned, the open attribute for self-owned).
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithLineCharacters selects box-drawing borders (true) or ASCII (false).
func WithLineCharacters(on bool) Option {
	return func(c *Controller) {
		c.lineCharacters = on
	}
}
