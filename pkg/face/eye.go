package face

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
)

// Eye is the motion state of a single eye: a spring-smoothed pupil that
// follows the shared gaze plus this eye's own drift, and an eyelid that
// snaps shut on a blink, holds, and springs open again.
type Eye struct {
	drift  motion.Drift
	reopen time.Duration

	pupil motion.Value2
	lid   *motion.Value // 0 open, 1 closed

	holding  bool
	reopenAt time.Time
	blinks   int
}

// NewEye returns an open eye at rest with the given drift.
func NewEye(drift motion.Drift, reopen time.Duration) *Eye {
	return &Eye{
		drift:  drift,
		reopen: reopen,
		pupil:  motion.NewValue2(motion.PupilSpring, motion.Vec2{}),
		lid:    motion.NewValue(motion.LidSpring, 0),
	}
}

// Blink shuts the lid at once and schedules it to reopen.
func (e *Eye) Blink(at time.Time) {
	e.lid.Jump(1)
	e.holding = true
	e.reopenAt = at.Add(e.reopen)
	e.blinks++
}

// Update retargets the pupil to gaze plus drift and advances both springs
// by dt.
func (e *Eye) Update(now time.Time, dt time.Duration, gaze motion.Vec2, elapsed time.Duration) {
	if e.holding && !now.Before(e.reopenAt) {
		e.holding = false
		e.lid.Set(0)
	}
	e.pupil.Set(gaze.Add(e.drift.At(elapsed)))
	e.pupil.Step(dt)
	e.lid.Step(dt)
}

// Offset returns the rendered pupil offset in face units.
func (e *Eye) Offset() motion.Vec2 { return e.pupil.Get() }

// Lid returns how far the eyelid is closed, 0 open to 1 shut.
func (e *Eye) Lid() float64 {
	v := e.lid.Get()
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Blinks returns the number of blinks this eye has started.
func (e *Eye) Blinks() int { return e.blinks }
