package face

import (
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// maxFrameStep caps the spring step after a stall (suspended terminal,
// slow frame) so the springs never integrate one huge jump.
const maxFrameStep = 100 * time.Millisecond

// Controller owns every motion value of the face. Each value has exactly
// one driver:
//
//   - pointer source: SetPointer
//   - saccade source: the saccade task, while thinking
//   - gaze: the active-source selection in Advance
//   - per-eye pupil and lid: the Eye, fed by gaze, drift and blinks
//   - blink flag: the blink task
type Controller struct {
	opts   Options
	rnd    sched.RandFunc
	logger *slog.Logger

	state        state.State
	stateChanged time.Time

	started bool
	mounted time.Time
	now     time.Time
	frames  int

	pointer       motion.Vec2
	saccadeTarget motion.Vec2
	saccade       motion.Value2
	gaze          motion.Value2

	blinkRaw   bool
	blinkUntil time.Time

	left, right *Eye
	wave        *Wave

	tasks       sched.Group
	blink       *sched.Task
	saccadeTask *sched.Task
}

// New returns a stopped controller in the idle state. rnd may be nil to
// use the package default source; tests pass a deterministic one. logger
// may be nil.
func New(opts Options, rnd sched.RandFunc, logger *slog.Logger) *Controller {
	if rnd == nil {
		rnd = sched.DefaultRand
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		opts:    opts,
		rnd:     rnd,
		logger:  logger,
		state:   state.Idle,
		saccade: motion.NewValue2(motion.GazeSpring, motion.Vec2{}),
		gaze:    motion.NewValue2(motion.GazeSpring, motion.Vec2{}),
		left:    NewEye(opts.LeftDrift, opts.LidReopen),
		right:   NewEye(opts.RightDrift, opts.LidReopen),
	}
	c.blink = c.tasks.Add(sched.New("blink", opts.BlinkDelay, rnd, c.onBlink))
	c.saccadeTask = c.tasks.Add(sched.New("saccade", opts.SaccadeDelay, rnd, c.onSaccade))
	return c
}

// Start mounts the face at now and arms its timers. Starting a running
// controller is a no-op.
func (c *Controller) Start(now time.Time) {
	if c.started {
		return
	}
	c.started = true
	c.tasks.Reset()
	c.mounted, c.now, c.stateChanged = now, now, now
	c.blink.Start(now)
	c.enterState(now)
	c.logger.Debug("face started", "state", c.state)
}

// Stop unmounts the face: every timer is disarmed and Advance becomes a
// no-op until the next Start.
func (c *Controller) Stop() {
	if !c.started {
		return
	}
	c.started = false
	c.tasks.Stop()
	c.wave = nil
	c.blinkRaw = false
	c.logger.Debug("face stopped", "frames", c.frames)
}

// Running reports whether the controller is started.
func (c *Controller) Running() bool { return c.started }

// State returns the current expressive state.
func (c *Controller) State() state.State { return c.state }

// SetState switches the expressive state at now. Setting the current
// state again does nothing, so gestures play once per transition.
func (c *Controller) SetState(s state.State, now time.Time) {
	if s == c.state {
		return
	}
	prev := c.state
	c.state = s
	c.stateChanged = now
	if s != state.Thinking {
		c.saccadeTarget = motion.Vec2{}
	}
	c.logger.Debug("face state", "from", prev, "to", s)
	if c.started {
		c.enterState(now)
	}
}

// enterState runs the per-state setup: saccades, the wave mount, and the
// reset of the thinking source.
func (c *Controller) enterState(now time.Time) {
	if c.state == state.Thinking {
		if !c.saccadeTask.Running() {
			c.saccadeTask.StartNow(now)
		}
	} else {
		c.saccadeTask.Stop()
		c.saccadeTarget = motion.Vec2{}
		c.saccade.Set(c.saccadeTarget)
	}

	if c.state == state.Speaking {
		if c.wave == nil || !c.wave.Animating() {
			c.wave = NewWave(c.rnd, now, c.opts.WaveFade)
		}
	} else if c.wave != nil {
		c.wave.Exit(now)
	}
}

// SetPointer records a pointer position in NDC and scales it to the
// pointer tracking range.
func (c *Controller) SetPointer(p Pointer) {
	c.pointer = motion.Vec2{
		X: clampUnit(p.X) * c.opts.PointerRange.X,
		Y: clampUnit(p.Y) * c.opts.PointerRange.Y,
	}
}

// Advance moves the face to now: due timers fire, then the active gaze
// source is selected and every spring steps forward.
func (c *Controller) Advance(now time.Time) {
	if !c.started {
		return
	}
	dt := now.Sub(c.now)
	if dt < 0 {
		return
	}
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	c.now = now

	if c.blinkRaw && !now.Before(c.blinkUntil) {
		c.blinkRaw = false
	}
	c.tasks.Advance(now)

	c.saccade.Set(c.saccadeTarget)
	thinking := c.saccade.Step(dt)

	source := c.pointer
	if c.state == state.Thinking {
		source = thinking
	}
	source.Y += state.VerticalOffset(c.state)
	c.gaze.Set(source)
	gaze := c.gaze.Step(dt)

	elapsed := now.Sub(c.mounted)
	c.left.Update(now, dt, gaze, elapsed)
	c.right.Update(now, dt, gaze, elapsed)

	if c.wave != nil && c.wave.Gone(now) {
		c.wave = nil
	}
	c.frames++
}

func (c *Controller) onBlink(due time.Time) {
	c.blinkRaw = true
	c.blinkUntil = due.Add(c.opts.BlinkHold)
	if state.BlinkSuppressed(c.state) {
		return
	}
	c.left.Blink(due)
	if c.rnd() < c.opts.PartnerBlink {
		c.right.Blink(due)
	}
}

func (c *Controller) onSaccade(time.Time) {
	r := c.opts.SaccadeRange
	c.saccadeTarget = motion.Vec2{
		X: (c.rnd()*2 - 1) * r.X,
		Y: (c.rnd()*2 - 1) * r.Y,
	}
}

// BlinkRaw reports the scheduler's blink flag before state suppression.
func (c *Controller) BlinkRaw() bool { return c.blinkRaw }

// Blinking reports the effective blink flag: the raw flag, forced false
// while listening, loading or sleeping.
func (c *Controller) Blinking() bool {
	return c.blinkRaw && !state.BlinkSuppressed(c.state)
}

// SaccadeTarget returns the current thinking source target.
func (c *Controller) SaccadeTarget() motion.Vec2 { return c.saccadeTarget }

// Gaze returns the shared, smoothed pupil target.
func (c *Controller) Gaze() motion.Vec2 { return c.gaze.Get() }

// Left returns the left eye.
func (c *Controller) Left() *Eye { return c.left }

// Right returns the right eye.
func (c *Controller) Right() *Eye { return c.right }

// Wave returns the mounted voice wave, or nil.
func (c *Controller) Wave() *Wave { return c.wave }

// Mood returns the mood of the current state.
func (c *Controller) Mood() state.Mood { return state.MoodFor(c.state) }

// Gesture returns the container transform at the last advanced frame.
func (c *Controller) Gesture() Transform {
	return GestureAt(state.GestureFor(c.state), c.sinceStateChange())
}

// sinceStateChange returns the time from the last state change to the
// last advanced frame. A change stamped after that frame counts as zero.
func (c *Controller) sinceStateChange() time.Duration {
	return max(c.now.Sub(c.stateChanged), 0)
}

// PendingTimers returns the number of armed timers.
func (c *Controller) PendingTimers() int { return c.tasks.Running() }

// Frames returns the number of frames advanced since construction.
func (c *Controller) Frames() int { return c.frames }
