// Package face implements the copilot face: a controller that turns the
// current expressive state, the pointer position and a set of randomized
// micro-behavior timers into per-frame motion targets, plus the eye, voice
// wave and sleep indicator renderers that draw them.
//
// The controller is frame driven. The owner calls Start once, Advance on
// every frame with the frame time, and Stop when the face goes away. No
// goroutines or OS timers are created, so a stopped controller cannot fire
// a late callback.
package face

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
)

// Options tunes the controller's behaviors. DefaultOptions returns the
// stock values.
type Options struct {
	// PointerRange is the pupil offset, in face units, reached when the
	// pointer sits at the edge of the viewport.
	PointerRange motion.Vec2

	// SaccadeDelay is the wait between saccades while thinking.
	SaccadeDelay sched.Delay
	// SaccadeRange bounds each saccade target: x in ±X, y in ±Y.
	SaccadeRange motion.Vec2

	// BlinkDelay is the wait between blinks.
	BlinkDelay sched.Delay
	// BlinkHold is how long the raw blink flag stays raised.
	BlinkHold time.Duration
	// LidReopen is how long a blinking eyelid stays shut before it
	// springs open again.
	LidReopen time.Duration
	// PartnerBlink is the chance the right eye blinks along with the left.
	PartnerBlink float64

	// LeftDrift and RightDrift are the per-eye micro-drift oscillators.
	LeftDrift  motion.Drift
	RightDrift motion.Drift

	// WaveFade is the fade-in and fade-out time of the voice wave.
	WaveFade time.Duration
}

// DefaultOptions returns the stock behavior tuning.
func DefaultOptions() Options {
	return Options{
		PointerRange: motion.Vec2{X: 18, Y: 14},

		SaccadeDelay: sched.Delay{Min: 220 * time.Millisecond, Max: 600 * time.Millisecond},
		SaccadeRange: motion.Vec2{X: 10, Y: 6},

		BlinkDelay:   sched.Delay{Min: 2 * time.Second, Max: 6 * time.Second},
		BlinkHold:    10 * time.Millisecond,
		LidReopen:    120 * time.Millisecond,
		PartnerBlink: 0.65,

		LeftDrift: motion.Drift{
			X: motion.Oscillator{Shape: motion.Sine, Amplitude: 1.1, Tau: 1200 * time.Millisecond},
			Y: motion.Oscillator{Shape: motion.Cosine, Amplitude: 0.6, Tau: 1400 * time.Millisecond},
		},
		RightDrift: motion.Drift{
			X: motion.Oscillator{Shape: motion.Cosine, Amplitude: 1.0, Tau: 1500 * time.Millisecond},
			Y: motion.Oscillator{Shape: motion.Sine, Amplitude: 0.7, Tau: 1600 * time.Millisecond},
		},

		WaveFade: 200 * time.Millisecond,
	}
}

// Pointer is a pointer position in normalized device coordinates: both
// axes run from -1 (left/top) to 1 (right/bottom) with 0 at the center.
type Pointer struct {
	X, Y float64
}

// PointerFromCell converts a terminal mouse cell to NDC for a viewport of
// width x height cells. A non-positive viewport yields the center.
func PointerFromCell(col, row, width, height int) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: clampUnit((float64(col)+0.5)/float64(width)*2 - 1),
		Y: clampUnit((float64(row)+0.5)/float64(height)*2 - 1),
	}
}

func clampUnit(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
