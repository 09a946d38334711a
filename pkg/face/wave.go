package face

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
)

// Voice wave geometry, in face units.
const (
	WaveBars      = 12
	WaveMinHeight = 6
	WaveMaxHeight = 36
)

var (
	waveCycle    = sched.Delay{Min: 800 * time.Millisecond, Max: 1400 * time.Millisecond}
	wavePhaseLag = 30 * time.Millisecond
)

// Wave is the speaking equalizer. It is created when the face starts
// speaking and removed once its exit fade completes.
type Wave struct {
	bars    [WaveBars]motion.Track
	start   time.Time
	fade    time.Duration
	exiting bool
	exitAt  time.Time
}

// NewWave builds a wave whose bars each loop through a randomized height
// cycle with their own duration and phase lag.
func NewWave(rnd sched.RandFunc, now time.Time, fade time.Duration) *Wave {
	if rnd == nil {
		rnd = sched.DefaultRand
	}
	w := &Wave{start: now, fade: fade}
	for i := range w.bars {
		w.bars[i] = motion.Track{
			Values:   []float64{6, 12 + rnd()*24, 8, 10 + rnd()*18, 6},
			Duration: waveCycle.Pick(rnd),
			Delay:    time.Duration(i) * wavePhaseLag,
			Ease:     motion.EaseInOut,
			Repeat:   true,
		}
	}
	return w
}

// Exit freezes the bars and starts the fade out. Calling Exit twice keeps
// the first exit time.
func (w *Wave) Exit(now time.Time) {
	if w.exiting {
		return
	}
	w.exiting = true
	w.exitAt = now
}

// Animating reports whether the bars are still moving.
func (w *Wave) Animating() bool { return !w.exiting }

// Gone reports whether the exit fade has finished at now.
func (w *Wave) Gone(now time.Time) bool {
	return w.exiting && now.Sub(w.exitAt) >= w.fade
}

// Heights returns the bar heights at now. After Exit the heights stay at
// their values from the moment of exit.
func (w *Wave) Heights(now time.Time) []float64 {
	if w.exiting {
		now = w.exitAt
	}
	elapsed := now.Sub(w.start)
	out := make([]float64, len(w.bars))
	for i, tr := range w.bars {
		out[i] = tr.At(elapsed)
	}
	return out
}

// Opacity returns the fade level at now in [0,1].
func (w *Wave) Opacity(now time.Time) float64 {
	if w.fade <= 0 {
		if w.exiting {
			return 0
		}
		return 1
	}
	in := float64(now.Sub(w.start)) / float64(w.fade)
	op := clamp01(in)
	if w.exiting {
		out := 1 - float64(now.Sub(w.exitAt))/float64(w.fade)
		if o := clamp01(out); o < op {
			op = o
		}
	}
	return op
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
