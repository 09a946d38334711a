package sched

import "time"

// Group advances and stops a set of tasks together.
type Group struct {
	tasks   []*Task
	stopped bool
}

// Add registers t with the group and returns it.
func (g *Group) Add(t *Task) *Task {
	g.tasks = append(g.tasks, t)
	return t
}

// Advance advances every task in registration order and returns the total
// number of firings. A stopped group fires nothing.
func (g *Group) Advance(now time.Time) int {
	if g.stopped {
		return 0
	}
	n := 0
	for _, t := range g.tasks {
		n += t.Advance(now)
	}
	return n
}

// Stop disarms every task and refuses further advances until Reset.
func (g *Group) Stop() {
	g.stopped = true
	for _, t := range g.tasks {
		t.Stop()
	}
}

// Reset re-enables a stopped group. Tasks stay disarmed until started.
func (g *Group) Reset() { g.stopped = false }

// Stopped reports whether Stop has been called since the last Reset.
func (g *Group) Stopped() bool { return g.stopped }

// Running returns the number of armed tasks.
func (g *Group) Running() int {
	n := 0
	for _, t := range g.tasks {
		if t.Running() {
			n++
		}
	}
	return n
}
