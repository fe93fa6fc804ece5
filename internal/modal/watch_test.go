package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherBatchesPerTick(t *testing.T) {
	s, sched := attachedSurface(t)
	var batches [][]Record
	w := NewWatcher(sched, func(recs []Record) { batches = append(batches, recs) })
	w.Observe(s)

	s.SetAttr(AttrID, "x")
	s.SetAttr(AttrID, "y")
	require.NoError(t, s.ShowModal())
	assert.Empty(t, batches)

	sched.Tick()
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 3)
	assert.Equal(t, AttrID, batches[0][0].Attribute)
	assert.False(t, batches[0][0].HadValue)
	assert.Equal(t, "x", batches[0][1].OldValue)
	assert.Equal(t, AttrOpen, batches[0][2].Attribute)
}

func TestWatcherFilter(t *testing.T) {
	s, sched := attachedSurface(t)
	calls := 0
	w := NewWatcher(sched, func([]Record) { calls++ })
	w.Observe(s, AttrOpen)

	s.SetAttr(AttrID, "ignored")
	sched.Tick()
	assert.Equal(t, 0, calls)

	require.NoError(t, s.ShowModal())
	sched.Tick()
	assert.Equal(t, 1, calls)
}

func TestWatcherDisconnectDropsPending(t *testing.T) {
	s, sched := attachedSurface(t)
	calls := 0
	w := NewWatcher(sched, func([]Record) { calls++ })
	w.Observe(s, AttrOpen)

	require.NoError(t, s.ShowModal())
	w.Disconnect()
	sched.Tick()
	assert.Equal(t, 0, calls)

	_, _, watchers := s.ListenerCount()
	assert.Equal(t, 0, watchers)
}

func TestWatcherTakeRecords(t *testing.T) {
	s, sched := attachedSurface(t)
	calls := 0
	w := NewWatcher(sched, func([]Record) { calls++ })
	w.Observe(s)

	s.SetAttr(AttrID, "a")
	assert.Len(t, w.TakeRecords(), 1)
	sched.Tick()
	assert.Equal(t, 0, calls, "taken records are not delivered again")
}

func TestNotifiersReportOutOfBandChanges(t *testing.T) {
	tests := []struct {
		name     string
		notifier Notifier
		opts     []SurfaceOption
	}{
		{"attribute", AttributeNotifier{}, nil},
		{"toggle", ToggleNotifier{}, nil},
		{"toggle legacy", ToggleNotifier{}, []SurfaceOption{WithLegacyEvents()}},
		{"poll", PollNotifier{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sched := attachedSurface(t, tt.opts...)
			var seen []bool
			cancel := tt.notifier.Subscribe(s, sched, func(open bool) { seen = append(seen, open) })

			require.NoError(t, s.ShowModal())
			sched.Tick()
			s.RequestClose()
			sched.Tick()
			assert.Equal(t, []bool{true, false}, seen)

			cancel()
			require.NoError(t, s.ShowModal())
			sched.Tick()
			assert.Len(t, seen, 2, "nothing is reported after cancel")

			toggles, pointers, watchers := s.ListenerCount()
			assert.Zero(t, toggles+pointers+watchers)
		})
	}
}

func TestNotifierByName(t *testing.T) {
	for _, name := range []string{"", "attribute", "toggle", "poll"} {
		_, ok := NotifierByName(name)
		assert.True(t, ok, name)
	}
	_, ok := NotifierByName("carrier-pigeon")
	assert.False(t, ok)
}
