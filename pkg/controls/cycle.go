package controls

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// DefaultInterval is the time between auto-cycle steps.
const DefaultInterval = 2400 * time.Millisecond

// AutoCycle steps through the fixed twelve-state sequence on an interval.
// Every enable restarts the walk at the first state, so the first step
// after enabling selects idle and the walk wraps after bounce.
type AutoCycle struct {
	task    *sched.Task
	seq     []state.State
	idx     int
	pending state.State
	changed bool
}

// NewAutoCycle returns a disabled cycle stepping every interval.
func NewAutoCycle(interval time.Duration) *AutoCycle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &AutoCycle{seq: state.Sequence(), pending: state.Unknown}
	c.task = sched.New("auto-cycle", sched.Fixed(interval), nil, c.step)
	return c
}

func (c *AutoCycle) step(time.Time) {
	c.pending = c.seq[c.idx%len(c.seq)]
	c.idx++
	c.changed = true
}

// Enable starts the walk from the beginning; the first step is one
// interval after now.
func (c *AutoCycle) Enable(now time.Time) {
	c.idx = 0
	c.changed = false
	c.task.Start(now)
}

// Disable stops the walk. No step fires until the next Enable.
func (c *AutoCycle) Disable() {
	c.task.Stop()
	c.changed = false
}

// Enabled reports whether the walk is running.
func (c *AutoCycle) Enabled() bool { return c.task.Running() }

// Steps returns how many steps have fired since construction.
func (c *AutoCycle) Steps() int { return c.task.Fired() }

// Advance fires every step due at or before now and returns the state the
// last one selected. ok is false when no step fired.
func (c *AutoCycle) Advance(now time.Time) (s state.State, ok bool) {
	c.task.Advance(now)
	if !c.changed {
		return state.Unknown, false
	}
	c.changed = false
	return c.pending, true
}
