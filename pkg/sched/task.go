// Package sched provides restartable, self-rescheduling timer tasks for
// frame-driven programs.
//
// A Task owns one deadline. It never starts a goroutine or an OS timer:
// the owner calls Advance with the current time (typically once per
// rendered frame) and the task fires its callback for every deadline that
// has passed, rescheduling itself after each firing. Stop disarms the task,
// after which Advance never fires again until the next Start.
package sched

import (
	"math/rand/v2"
	"time"
)

// RandFunc returns a pseudo-random number in [0, 1).
type RandFunc func() float64

// DefaultRand is the package-level source used when a task is built with
// a nil RandFunc.
var DefaultRand RandFunc = rand.Float64

// Delay is a closed range of wait times. A zero-width range is a fixed
// interval.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// Fixed returns a Delay that always yields d.
func Fixed(d time.Duration) Delay {
	return Delay{Min: d, Max: d}
}

// Pick returns a delay uniformly distributed in [Min, Max].
func (d Delay) Pick(rnd RandFunc) time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(rnd()*float64(d.Max-d.Min))
}

// Task is a self-rescheduling deadline.
type Task struct {
	name  string
	delay Delay
	rnd   RandFunc
	fire  func(now time.Time)

	next  time.Time
	armed bool
	fired int
}

// New returns a disarmed task. fire is called with the deadline at which
// each firing was due.
func New(name string, delay Delay, rnd RandFunc, fire func(now time.Time)) *Task {
	if rnd == nil {
		rnd = DefaultRand
	}
	return &Task{name: name, delay: delay, rnd: rnd, fire: fire}
}

// Name returns the task name given to New.
func (t *Task) Name() string { return t.name }

// Start arms the task with its first deadline one delay after now.
// Starting a running task restarts it.
func (t *Task) Start(now time.Time) {
	t.next = now.Add(t.delay.Pick(t.rnd))
	t.armed = true
}

// StartNow arms the task and fires it immediately, then schedules the
// next firing one delay later.
func (t *Task) StartNow(now time.Time) {
	t.armed = true
	t.next = now
	t.Advance(now)
}

// Stop disarms the task. Pending deadlines are discarded.
func (t *Task) Stop() {
	t.armed = false
	t.next = time.Time{}
}

// Running reports whether the task is armed.
func (t *Task) Running() bool { return t.armed }

// Deadline returns the next firing time and whether the task is armed.
func (t *Task) Deadline() (time.Time, bool) { return t.next, t.armed }

// Fired returns the total number of firings since construction.
func (t *Task) Fired() int { return t.fired }

// Advance fires the task for every deadline at or before now and returns
// the number of firings. A callback that stops the task ends the loop.
func (t *Task) Advance(now time.Time) int {
	n := 0
	for t.armed && !t.next.After(now) {
		due := t.next
		step := t.delay.Pick(t.rnd)
		if step <= 0 {
			// A zero delay would spin; collapse to a single firing per call.
			step = time.Nanosecond
			if due.Add(step).Before(now) {
				t.next = now.Add(step)
			} else {
				t.next = due.Add(step)
			}
		} else {
			t.next = due.Add(step)
		}
		t.fired++
		n++
		if t.fire != nil {
			t.fire(due)
		}
	}
	return n
}
