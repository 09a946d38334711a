// Package motion provides the animation primitives behind the face:
// spring-smoothed scalars, time-based oscillators, and keyframe tracks.
//
// Springs are integrated with harmonica. A spring's coefficients depend on
// the frame delta, so each Value caches the harmonica.Spring for the last
// delta it saw and rebuilds it only when the delta changes.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring in physical terms.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64 // defaults to 1 when zero
}

// Preset springs used by the face.
var (
	// PupilSpring smooths each eye's pupil position.
	PupilSpring = SpringConfig{Stiffness: 350, Damping: 28, Mass: 0.25}
	// GazeSpring smooths the shared gaze target and the saccade source.
	GazeSpring = SpringConfig{Stiffness: 260, Damping: 24, Mass: 0.3}
	// LidSpring reopens the eyelid after a blink.
	LidSpring = SpringConfig{Stiffness: 280, Damping: 24, Mass: 1}
)

// AngularFrequency returns sqrt(k/m) in radians per second.
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.mass())
}

// DampingRatio returns c / (2*sqrt(k*m)).
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.mass()))
}

func (c SpringConfig) mass() float64 {
	if c.Mass <= 0 {
		return 1
	}
	return c.Mass
}

// Value is a scalar that follows its target through a spring. Exactly one
// driver should call Set; any number of readers may call Get.
type Value struct {
	cfg    SpringConfig
	pos    float64
	vel    float64
	target float64

	spring harmonica.Spring
	dt     time.Duration
}

// NewValue returns a Value at rest at initial.
func NewValue(cfg SpringConfig, initial float64) *Value {
	return &Value{cfg: cfg, pos: initial, target: initial}
}

// Set changes the target. Position and velocity are kept, so retargeting
// mid-flight hands off smoothly.
func (v *Value) Set(target float64) {
	v.target = target
}

// Jump moves the value to x immediately and stops it.
func (v *Value) Jump(x float64) {
	v.pos, v.target, v.vel = x, x, 0
}

// Step advances the spring by dt and returns the new position.
func (v *Value) Step(dt time.Duration) float64 {
	if dt <= 0 {
		return v.pos
	}
	if dt != v.dt {
		v.spring = harmonica.NewSpring(dt.Seconds(), v.cfg.AngularFrequency(), v.cfg.DampingRatio())
		v.dt = dt
	}
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	return v.pos
}

// Get returns the current position.
func (v *Value) Get() float64 { return v.pos }

// Velocity returns the current velocity in units per second.
func (v *Value) Velocity() float64 { return v.vel }

// Target returns the current target.
func (v *Value) Target() float64 { return v.target }

// Settled reports whether the value is within eps of its target and
// moving slower than eps per second.
func (v *Value) Settled(eps float64) bool {
	return math.Abs(v.pos-v.target) < eps && math.Abs(v.vel) < eps
}

// Vec2 is a 2D offset in face units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Value2 pairs two Values sharing a spring configuration.
type Value2 struct {
	X, Y *Value
}

// NewValue2 returns a Value2 at rest at initial.
func NewValue2(cfg SpringConfig, initial Vec2) Value2 {
	return Value2{X: NewValue(cfg, initial.X), Y: NewValue(cfg, initial.Y)}
}

// Set retargets both axes.
func (v Value2) Set(target Vec2) {
	v.X.Set(target.X)
	v.Y.Set(target.Y)
}

// Step advances both axes and returns the new position.
func (v Value2) Step(dt time.Duration) Vec2 {
	return Vec2{v.X.Step(dt), v.Y.Step(dt)}
}

// Get returns the current position.
func (v Value2) Get() Vec2 { return Vec2{v.X.Get(), v.Y.Get()} }

// Target returns the current target.
func (v Value2) Target() Vec2 { return Vec2{v.X.Target(), v.Y.Target()} }
