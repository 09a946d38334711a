package face

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// EyeFrame is the renderable state of one eye.
type EyeFrame struct {
	Offset motion.Vec2 `json:"offset"`
	Lid    float64     `json:"lid"`
}

// Frame is an immutable snapshot of everything the renderer needs. It is
// also the record emitted by the headless player.
type Frame struct {
	Elapsed     time.Duration `json:"-"`
	ElapsedMS   int64         `json:"t_ms"`
	State       string        `json:"state"`
	Mood        string        `json:"mood"`
	ScaleY      float64       `json:"scale_y"`
	Blink       bool          `json:"blink"`
	Gaze        motion.Vec2   `json:"gaze"`
	Left        EyeFrame      `json:"left"`
	Right       EyeFrame      `json:"right"`
	Gesture     string        `json:"gesture"`
	Transform   Transform     `json:"transform"`
	Wave        []float64     `json:"wave,omitempty"`
	WaveOpacity float64       `json:"wave_opacity,omitempty"`
	Sleeping    bool          `json:"sleeping,omitempty"`
	ZzOpacity   float64       `json:"zz_opacity,omitempty"`
	ZzRise      float64       `json:"zz_rise,omitempty"`
}

// Snapshot captures the controller at its last advanced frame.
func (c *Controller) Snapshot() Frame {
	mood := c.Mood()
	elapsed := c.now.Sub(c.mounted)
	f := Frame{
		Elapsed:   elapsed,
		ElapsedMS: elapsed.Milliseconds(),
		State:     c.state.String(),
		Mood:      mood.String(),
		ScaleY:    mood.ScaleY(),
		Blink:     c.Blinking(),
		Gaze:      c.Gaze(),
		Left:      EyeFrame{Offset: c.left.Offset(), Lid: c.left.Lid()},
		Right:     EyeFrame{Offset: c.right.Offset(), Lid: c.right.Lid()},
		Transform: c.Gesture(),
	}
	g := state.GestureFor(c.state)
	f.Gesture = state.GestureNone.String()
	if c.sinceStateChange() < GestureDuration(g) {
		f.Gesture = g.String()
	}
	if c.wave != nil {
		f.Wave = c.wave.Heights(c.now)
		f.WaveOpacity = c.wave.Opacity(c.now)
	}
	if c.state == state.Sleeping {
		since := c.sinceStateChange()
		f.Sleeping = true
		f.ZzOpacity = sleepZOpacity.At(since)
		f.ZzRise = sleepZRise.At(since)
	}
	return f
}
