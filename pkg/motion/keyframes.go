package motion

import "time"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseOut decelerates towards the end of a segment.
func EaseOut(t float64) float64 { return t * (2 - t) }

// EaseIn accelerates from the start of a segment.
func EaseIn(t float64) float64 { return t * t }

// EaseInOut accelerates then decelerates.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Track animates one property through a list of keyframe values.
//
// Times, if set, holds the normalized position of each keyframe in [0,1]
// and must have the same length as Values; otherwise keyframes are spaced
// evenly. Ease is applied per segment. A Track with Repeat loops forever;
// otherwise it holds its last value once Duration has passed.
type Track struct {
	Values   []float64
	Times    []float64
	Duration time.Duration
	Delay    time.Duration
	Ease     Easing
	Repeat   bool
}

// At returns the track value after elapsed.
func (tr Track) At(elapsed time.Duration) float64 {
	n := len(tr.Values)
	switch {
	case n == 0:
		return 0
	case n == 1 || tr.Duration <= 0:
		return tr.Values[n-1]
	}

	elapsed -= tr.Delay
	if elapsed <= 0 {
		return tr.Values[0]
	}
	if elapsed >= tr.Duration {
		if !tr.Repeat {
			return tr.Values[n-1]
		}
		elapsed %= tr.Duration
	}

	p := float64(elapsed) / float64(tr.Duration)
	for i := 0; i < n-1; i++ {
		t0, t1 := tr.keyTime(i), tr.keyTime(i+1)
		if p > t1 && i < n-2 {
			continue
		}
		span := t1 - t0
		if span <= 0 {
			return tr.Values[i+1]
		}
		local := (p - t0) / span
		if local < 0 {
			local = 0
		} else if local > 1 {
			local = 1
		}
		ease := tr.Ease
		if ease == nil {
			ease = Linear
		}
		a, b := tr.Values[i], tr.Values[i+1]
		return a + (b-a)*ease(local)
	}
	return tr.Values[n-1]
}

// Done reports whether a non-repeating track has finished after elapsed.
func (tr Track) Done(elapsed time.Duration) bool {
	return !tr.Repeat && elapsed >= tr.Delay+tr.Duration
}

func (tr Track) keyTime(i int) float64 {
	if len(tr.Times) == len(tr.Values) {
		return tr.Times[i]
	}
	return float64(i) / float64(len(tr.Values)-1)
}
