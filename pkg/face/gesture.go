package face

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// Transform is the container displacement produced by a gesture.
// X and Y are in face units, Rotate and RotateX in degrees.
type Transform struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rotate  float64 `json:"rotate"`
	RotateX float64 `json:"rotate_x"`
}

// gestureClip is one keyframe animation per transform channel. Channels
// left zero stay at rest.
type gestureClip struct {
	x, y, rotate, rotateX motion.Track
	duration              time.Duration
}

func gestureClipFor(g state.Gesture) gestureClip {
	switch g {
	case state.GestureSuccess:
		d := 900 * time.Millisecond
		times := []float64{0, 0.45, 1}
		return gestureClip{
			y:        motion.Track{Values: []float64{0, -10, 0}, Times: times, Duration: d, Ease: motion.EaseOut},
			rotate:   motion.Track{Values: []float64{0, -2, 0}, Times: times, Duration: d, Ease: motion.EaseOut},
			duration: d,
		}
	case state.GestureError:
		d := 700 * time.Millisecond
		return gestureClip{
			x:        motion.Track{Values: []float64{0, -10, 10, -8, 8, -4, 4, 0}, Duration: d, Ease: motion.EaseInOut},
			duration: d,
		}
	case state.GestureAttention:
		d := 1200 * time.Millisecond
		return gestureClip{
			y:        motion.Track{Values: []float64{0, -16, 0, -8, 0}, Duration: d, Ease: motion.EaseOut},
			duration: d,
		}
	case state.GesturePrompt:
		d := 800 * time.Millisecond
		return gestureClip{
			rotateX:  motion.Track{Values: []float64{0, 10, 0}, Duration: d, Ease: motion.EaseInOut},
			duration: d,
		}
	case state.GestureBounce:
		d := 1300 * time.Millisecond
		return gestureClip{
			y:        motion.Track{Values: []float64{0, -22, 0, -10, 0}, Duration: d, Ease: motion.EaseOut},
			duration: d,
		}
	default:
		return gestureClip{}
	}
}

// GestureAt returns the transform of gesture g after elapsed. Gestures
// play once; past their duration, and for GestureNone, the result is the
// identity transform.
func GestureAt(g state.Gesture, elapsed time.Duration) Transform {
	c := gestureClipFor(g)
	if c.duration == 0 || elapsed >= c.duration || elapsed < 0 {
		return Transform{}
	}
	return Transform{
		X:       c.x.At(elapsed),
		Y:       c.y.At(elapsed),
		Rotate:  c.rotate.At(elapsed),
		RotateX: c.rotateX.At(elapsed),
	}
}

// GestureDuration returns how long gesture g plays.
func GestureDuration(g state.Gesture) time.Duration {
	return gestureClipFor(g).duration
}

// sleepZ is the floating "Zz" loop shown while sleeping.
var (
	sleepZOpacity = motion.Track{Values: []float64{0, 1, 0}, Duration: 2200 * time.Millisecond, Repeat: true}
	sleepZRise    = motion.Track{Values: []float64{-4, -16, -28}, Duration: 2200 * time.Millisecond, Repeat: true}
)
