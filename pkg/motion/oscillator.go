package motion

import (
	"math"
	"time"
)

// Shape selects the periodic function an Oscillator follows.
type Shape int

const (
	Sine Shape = iota
	Cosine
)

// Oscillator is a stateless periodic offset. Its output depends only on
// the elapsed time passed in, so two calls with the same elapsed value
// always agree.
type Oscillator struct {
	Shape     Shape
	Amplitude float64
	// Tau is the time over which the phase advances by one radian.
	Tau time.Duration
}

// At returns the oscillator output after elapsed.
func (o Oscillator) At(elapsed time.Duration) float64 {
	if o.Tau <= 0 {
		return 0
	}
	phase := float64(elapsed) / float64(o.Tau)
	if o.Shape == Cosine {
		return o.Amplitude * math.Cos(phase)
	}
	return o.Amplitude * math.Sin(phase)
}

// Drift is a pair of oscillators producing a small 2D offset.
type Drift struct {
	X, Y Oscillator
}

// At returns the drift offset after elapsed.
func (d Drift) At(elapsed time.Duration) Vec2 {
	return Vec2{d.X.At(elapsed), d.Y.At(elapsed)}
}
