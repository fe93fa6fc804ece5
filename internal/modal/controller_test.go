package modal

import (
	"errors"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPresenter struct {
	calls       int
	activated   int
	deactivated int
	bound       *Surface
}

func (p *countingPresenter) Content() string {
	p.calls++
	return "hello"
}

func (p *countingPresenter) Activate() tea.Cmd {
	p.activated++
	return func() tea.Msg { return "loaded" }
}

func (p *countingPresenter) Deactivate() { p.deactivated++ }

func (p *countingPresenter) BindSurface(s *Surface) { p.bound = s }

func (p *countingPresenter) Title() string { return "About" }

// tick runs a scheduler tick and syncs the controllers whose keys came back,
// the way the console does after each update.
func tick(sched *Scheduler, cs ...*Controller) []tea.Cmd {
	keys := sched.Tick()
	var cmds []tea.Cmd
	for _, k := range keys {
		for _, c := range cs {
			if c.Key() == k {
				if cmd := c.Sync(); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}
	}
	return cmds
}

func mountSelfOwned(t *testing.T, opts ...Option) (*Controller, *countingPresenter, *Element, *Scheduler) {
	t.Helper()
	sched := NewScheduler()
	p := &countingPresenter{}
	c := New(SelfOwned, p, append([]Option{WithScheduler(sched)}, opts...)...)
	host := NewElement("main")
	require.NoError(t, c.Mount(host))
	return c, p, host, sched
}

func mountHostOwned(t *testing.T, opts ...SurfaceOption) (*Controller, *countingPresenter, *Surface, *Scheduler) {
	t.Helper()
	sched := NewScheduler()
	s := NewSurface(sched, opts...)
	NewElement("main").AppendChild(s)
	p := &countingPresenter{}
	c := New(HostOwned, p, WithScheduler(sched))
	require.NoError(t, c.Mount(s))
	return c, p, s, sched
}

func TestScenarioSelfOwnedShow(t *testing.T) {
	c, p, _, sched := mountSelfOwned(t)

	assert.Empty(t, c.Render())
	tick(sched, c)
	assert.Equal(t, StateClosed, c.State())
	assert.Empty(t, c.Render())
	assert.Zero(t, p.calls, "closed modals never call the presenter")

	c.Show()
	assert.Equal(t, StateOpen, c.State())
	assert.True(t, c.Surface().IsOpen())
	assert.Contains(t, c.Render(), "hello")
	assert.Contains(t, c.Render(), "About")
}

func TestScenarioRedundantClose(t *testing.T) {
	for _, mode := range []OwnershipMode{SelfOwned, HostOwned} {
		t.Run(mode.String(), func(t *testing.T) {
			var c *Controller
			if mode == SelfOwned {
				c, _, _, _ = mountSelfOwned(t)
			} else {
				c, _, _, _ = mountHostOwned(t)
			}
			assert.NotPanics(t, func() {
				c.Close()
				assert.Equal(t, StateClosed, c.State())
				c.Close()
				assert.Equal(t, StateClosed, c.State())
			})
		})
	}
}

func TestScenarioHostClosesOutOfBand(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		name := "structured"
		var opts []SurfaceOption
		if legacy {
			name = "legacy"
			opts = append(opts, WithLegacyEvents())
		}
		t.Run(name, func(t *testing.T) {
			c, p, s, sched := mountHostOwned(t, opts...)
			require.NoError(t, s.ShowModal())
			tick(sched, c)
			assert.True(t, c.Open())
			assert.Equal(t, 1, p.activated)
			assert.NotEmpty(t, c.Render())

			// Esc pressed on the native dialog.
			require.True(t, s.RequestClose())
			keys := sched.Tick()
			assert.Contains(t, keys, c.Key())
			assert.False(t, c.Open())
			assert.Empty(t, c.Render())
			c.Sync()
			assert.Equal(t, 1, p.deactivated)
		})
	}
}

func TestHostOwnedRequiresSurfaceParent(t *testing.T) {
	tests := []struct {
		name string
		host Container
		want string
	}{
		{"element", NewElement("div"), "<div>"},
		{"nil", nil, "<nothing>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &countingPresenter{}
			c := New(HostOwned, p, WithID("about"))
			err := c.Mount(tt.host)

			var se *StructuralError
			require.True(t, errors.As(err, &se))
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, "modal#about", se.Component)
			assert.False(t, c.Mounted())
			assert.Nil(t, c.Parent())
			assert.Empty(t, c.Render())
			assert.Zero(t, p.calls)
		})
	}
}

func TestHostOwnedReflectsParentImmediately(t *testing.T) {
	sched := NewScheduler()
	s := NewSurface(sched)
	NewElement("main").AppendChild(s)
	require.NoError(t, s.ShowModal())

	c := New(HostOwned, &countingPresenter{}, WithScheduler(sched))
	require.NoError(t, c.Mount(s))
	assert.True(t, c.Open())
	assert.Equal(t, Node(s), c.Parent())
}

func TestHostOwnedDelegatesToParent(t *testing.T) {
	c, p, s, _ := mountHostOwned(t)
	assert.Same(t, s, p.bound)

	c.Show()
	assert.True(t, s.IsOpen())
	c.CloseWith("cancel")
	assert.False(t, s.IsOpen())
	assert.Equal(t, "cancel", s.ReturnValue())
}

func TestSurfaceClaimedOnce(t *testing.T) {
	_, _, s, sched := mountHostOwned(t)
	other := New(HostOwned, &countingPresenter{}, WithScheduler(sched))
	assert.ErrorIs(t, other.Mount(s), ErrSurfaceClaimed)
	assert.False(t, other.Mounted())
}

func TestMountTwice(t *testing.T) {
	c, _, host, _ := mountSelfOwned(t)
	assert.ErrorIs(t, c.Mount(host), ErrAlreadyMounted)
}

func TestHostOwnedUnmountLeavesSurface(t *testing.T) {
	c, _, s, sched := mountHostOwned(t)
	c.Show()
	tick(sched, c)
	c.Unmount()

	assert.True(t, s.IsOpen(), "host-owned surface is left untouched")
	assert.Empty(t, s.Children())
	toggles, pointers, watchers := s.ListenerCount()
	assert.Zero(t, toggles+pointers+watchers)

	again := New(HostOwned, &countingPresenter{}, WithScheduler(sched))
	assert.NoError(t, again.Mount(s), "the claim is released on unmount")
}

func TestSelfOwnedSurfaceAttributes(t *testing.T) {
	c, _, host, _ := mountSelfOwned(t, WithID("about-dialog"), WithClosedBy(ClosedByCloseRequest))
	s := c.Surface()

	assert.Equal(t, Node(host), s.Parent())
	assert.Equal(t, "about-dialog", s.ID())
	v, _ := s.Attr(AttrLabelledBy)
	assert.Equal(t, "modal-title", v)
	v, _ = s.Attr(AttrDescribedBy)
	assert.Equal(t, "modal-description", v)
	assert.Equal(t, ClosedByCloseRequest, s.ClosedBy())
	assert.Equal(t, Node(s), c.Subtree().Parent())
}

func TestSelfOwnedShowIsSynchronous(t *testing.T) {
	c, _, _, sched := mountSelfOwned(t)
	c.Show()
	assert.True(t, c.Open(), "no tick needed for controller-initiated changes")
	assert.True(t, sched.Pending())
}

func TestSelfOwnedShowBeforeMount(t *testing.T) {
	c := New(SelfOwned, &countingPresenter{})
	c.Show()
	assert.False(t, c.Open(), "a detached surface cannot be shown")
}

func TestBackdropDismissal(t *testing.T) {
	c, _, _, sched := mountSelfOwned(t)
	s := c.Surface()

	c.Show()
	s.PointerDown(c.Subtree().BodyNode())
	assert.True(t, c.Open(), "hits inside the content do not close")
	s.PointerDown(c.Subtree())
	assert.True(t, c.Open())

	s.PointerDown(s)
	assert.False(t, c.Open())
	assert.Contains(t, sched.Tick(), c.Key())

	s.PointerDown(s)
	assert.False(t, c.Open(), "backdrop on a closed surface does nothing")
}

func TestBackdropRespectsClosedBy(t *testing.T) {
	c, _, _, _ := mountSelfOwned(t, WithClosedBy(ClosedByCloseRequest))
	c.Show()
	c.Surface().PointerDown(c.Surface())
	assert.True(t, c.Open())
}

func TestSelfOwnedOutOfBandClose(t *testing.T) {
	c, p, _, sched := mountSelfOwned(t)
	c.Show()
	cmds := tick(sched, c)
	assert.Len(t, cmds, 1)
	assert.Equal(t, 1, p.activated)

	c.Surface().RemoveAttr(AttrOpen)
	keys := sched.Tick()
	assert.Equal(t, []string{c.Key()}, keys, "one refresh for the change")
	assert.Empty(t, c.Render())
}

func TestInitialOpenQueuesOneShow(t *testing.T) {
	c, _, _, sched := mountSelfOwned(t, WithInitialOpen())
	assert.Empty(t, c.Render(), "first render happens closed")
	assert.False(t, c.Open())

	c.Render()
	tick(sched, c)
	assert.True(t, c.Open())

	c.Close()
	c.Render()
	tick(sched, c)
	assert.False(t, c.Open(), "the initial show happens only once")
}

func TestSelfOwnedUnmount(t *testing.T) {
	c, p, host, sched := mountSelfOwned(t)
	s := c.Surface()
	c.Show()
	tick(sched, c)

	c.Unmount()
	assert.False(t, s.IsOpen())
	assert.Nil(t, s.Parent())
	assert.Empty(t, host.Children())
	assert.Equal(t, 1, p.deactivated)
	_, _, watchers := s.ListenerCount()
	assert.Zero(t, watchers)

	c.Dispose()
	_, pointers, _ := s.ListenerCount()
	assert.Zero(t, pointers)
}

func TestRenderIsIdempotent(t *testing.T) {
	c, _, _, _ := mountSelfOwned(t)
	c.Show()
	assert.Equal(t, c.Render(), c.Render())
}

func TestClosedRendersEmptyForEveryProducer(t *testing.T) {
	producers := []Presenter{
		PresenterFunc(func() string { return "x" }),
		PresenterFunc(func() string { return "" }),
		&countingPresenter{},
	}
	for _, p := range producers {
		self := New(SelfOwned, p)
		require.NoError(t, self.Mount(NewElement("main")))
		assert.Empty(t, self.Render())

		s := NewSurface(nil)
		NewElement("main").AppendChild(s)
		host := New(HostOwned, p)
		require.NoError(t, host.Mount(s))
		assert.Empty(t, host.Render())
	}
}

// Whatever the sequence, the final state is the effect of the last transition.
func TestLastTransitionWins(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, mode := range []OwnershipMode{SelfOwned, HostOwned} {
		var (
			c     *Controller
			s     *Surface
			sched *Scheduler
		)
		if mode == SelfOwned {
			c, _, _, sched = mountSelfOwned(t)
			s = c.Surface()
		} else {
			c, _, s, sched = mountHostOwned(t)
		}

		for round := 0; round < 50; round++ {
			want := c.Open()
			for i := rng.Intn(6) + 1; i > 0; i-- {
				switch rng.Intn(5) {
				case 0:
					c.Show()
					want = true
				case 1:
					c.Close()
					want = false
				case 2:
					if mode == SelfOwned && s.IsOpen() {
						s.PointerDown(s)
						want = false
					}
				case 3:
					_ = s.ShowModal()
					want = true
				case 4:
					s.RequestClose()
					want = false
				}
			}
			tick(sched, c)
			require.Equal(t, want, c.Open(), "%s round %d", mode, round)
			require.Equal(t, want, c.Render() != "", "%s round %d", mode, round)
		}
	}
}

func TestSizeClampsToTerminal(t *testing.T) {
	c := New(SelfOwned, &countingPresenter{}, WithSize(SizeXLarge))
	assert.Equal(t, 120, c.FrameWidth())
	c.SetSize(60, 20)
	assert.Equal(t, 58, c.FrameWidth())

	// Never wider than the screen.
	c.SetSize(8, 20)
	assert.Equal(t, 8, c.FrameWidth())
	c.SetSize(11, 20)
	assert.Equal(t, 10, c.FrameWidth())
}
