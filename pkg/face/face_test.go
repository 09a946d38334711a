package face

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/copilot-face/pkg/components"
	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
	"gitlab.com/tinyland/lab/copilot-face/pkg/termtest"
)

const frame = time.Second / 30

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func constRand(v float64) sched.RandFunc { return func() float64 { return v } }

func seededRand(seed uint64) sched.RandFunc {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Float64
}

// countingRand wraps rnd and counts calls. Every timer firing draws from
// the source, so the count works as a spy on timer callbacks.
func countingRand(rnd sched.RandFunc, n *int) sched.RandFunc {
	return func() float64 {
		*n++
		return rnd()
	}
}

// run advances c frame by frame from start for d and calls each with the
// frame time after every advance. It returns the end time.
func run(c *Controller, start time.Time, d time.Duration, each func(now time.Time)) time.Time {
	now := start
	for end := start.Add(d); now.Before(end); {
		now = now.Add(frame)
		c.Advance(now)
		if each != nil {
			each(now)
		}
	}
	return now
}

func newStarted(s state.State, rnd sched.RandFunc) *Controller {
	c := New(DefaultOptions(), rnd, nil)
	c.SetState(s, epoch)
	c.Start(epoch)
	return c
}

func TestBlinkSuppressedStatesNeverBlink(t *testing.T) {
	for _, s := range []state.State{state.Listening, state.Loading, state.Sleeping} {
		t.Run(s.String(), func(t *testing.T) {
			c := newStarted(s, seededRand(7))
			sawRaw := false
			run(c, epoch, 30*time.Second, func(time.Time) {
				if c.BlinkRaw() {
					sawRaw = true
				}
				if c.Blinking() {
					t.Fatalf("effective blink raised in %v", s)
				}
				if c.Left().Lid() != 0 || c.Right().Lid() != 0 {
					t.Fatalf("lid moved in %v", s)
				}
			})
			if !sawRaw {
				t.Error("raw scheduler never fired; suppression untested")
			}
		})
	}
}

func TestBlinkSchedulerInterval(t *testing.T) {
	c := newStarted(state.Idle, constRand(0))
	// Every delay is the 2s minimum.
	end := run(c, epoch, 10*time.Second+frame/2, nil)
	if got := c.Left().Blinks(); got != 5 {
		t.Errorf("left blinks in 10s = %d, want 5", got)
	}
	if !c.Running() || end.IsZero() {
		t.Fatal("controller stopped unexpectedly")
	}
}

func TestBlinkFlagClearsAfterHold(t *testing.T) {
	c := newStarted(state.Idle, constRand(0))
	raised := 0
	run(c, epoch, 3*time.Second, func(time.Time) {
		if c.Blinking() {
			raised++
		}
	})
	if raised != 1 {
		t.Errorf("blink flag visible for %d frames, want exactly 1", raised)
	}
}

func TestPartnerBlinkChance(t *testing.T) {
	always := newStarted(state.Idle, constRand(0.5))
	run(always, epoch, 20*time.Second, nil)
	if always.Left().Blinks() == 0 || always.Right().Blinks() != always.Left().Blinks() {
		t.Errorf("with draw 0.5 < 0.65 both eyes should blink together: left %d right %d",
			always.Left().Blinks(), always.Right().Blinks())
	}

	never := newStarted(state.Idle, constRand(0.9))
	run(never, epoch, 20*time.Second, nil)
	if never.Left().Blinks() == 0 || never.Right().Blinks() != 0 {
		t.Errorf("with draw 0.9 only the left eye blinks: left %d right %d",
			never.Left().Blinks(), never.Right().Blinks())
	}
}

func TestLidSnapsShutAndReopens(t *testing.T) {
	e := NewEye(motion.Drift{}, 120*time.Millisecond)
	e.Blink(epoch)
	if e.Lid() != 1 {
		t.Fatalf("lid after blink = %v, want 1", e.Lid())
	}
	now := epoch
	for i := 0; i < 3; i++ { // 99ms, still held
		now = now.Add(frame)
		e.Update(now, frame, motion.Vec2{}, 0)
	}
	if e.Lid() != 1 {
		t.Errorf("lid reopened before hold ended: %v", e.Lid())
	}
	for i := 0; i < 60; i++ {
		now = now.Add(frame)
		e.Update(now, frame, motion.Vec2{}, 0)
	}
	if e.Lid() > 0.01 {
		t.Errorf("lid still closed after reopening: %v", e.Lid())
	}
}

func TestSaccadeTargetsStayInBounds(t *testing.T) {
	c := newStarted(state.Thinking, seededRand(42))
	seen := map[motion.Vec2]bool{}
	run(c, epoch, 20*time.Second, func(time.Time) {
		tgt := c.SaccadeTarget()
		if tgt.X < -10 || tgt.X > 10 || tgt.Y < -6 || tgt.Y > 6 {
			t.Fatalf("saccade target out of bounds: %+v", tgt)
		}
		seen[tgt] = true
	})
	// 20s at 220-600ms per saccade.
	if len(seen) < 30 {
		t.Errorf("only %d distinct saccade targets in 20s", len(seen))
	}
}

func TestSaccadeFiresImmediatelyOnEnteringThinking(t *testing.T) {
	c := newStarted(state.Idle, constRand(1))
	if (c.SaccadeTarget() != motion.Vec2{}) {
		t.Fatal("saccade target set outside thinking")
	}
	c.SetState(state.Thinking, epoch)
	if got := c.SaccadeTarget(); got.X != 10 || got.Y != 6 {
		t.Errorf("first saccade = %+v, want {10 6} from draw 1", got)
	}
}

func TestLeavingThinkingZeroesSaccadeImmediately(t *testing.T) {
	c := newStarted(state.Thinking, seededRand(3))
	now := run(c, epoch, 2*time.Second, nil)
	if (c.SaccadeTarget() == motion.Vec2{}) {
		t.Fatal("expected a non-zero saccade target while thinking")
	}
	c.SetState(state.Speaking, now)
	if got := c.SaccadeTarget(); got.X != 0 || got.Y != 0 {
		t.Errorf("saccade target after leaving thinking = %+v, want exactly zero", got)
	}
	if c.PendingTimers() != 1 {
		t.Errorf("saccade task still armed: %d timers pending", c.PendingTimers())
	}
}

func TestActiveSourceSelection(t *testing.T) {
	c := newStarted(state.Idle, seededRand(11))
	c.SetPointer(Pointer{X: 1, Y: 0})
	now := run(c, epoch, 2*time.Second, nil)
	if g := c.Gaze(); g.X < 17.5 {
		t.Fatalf("gaze should follow the pointer to x=18, got %+v", g)
	}

	c.SetState(state.Thinking, now)
	before := c.Gaze()
	if c.Gaze() != before {
		t.Fatal("switching source moved the gaze without a frame")
	}
	now = run(c, now, 3*time.Second, nil)
	tgt := c.SaccadeTarget()
	if g := c.Gaze(); g.X > 12 {
		t.Errorf("gaze still tracking pointer while thinking: %+v (saccade %+v)", g, tgt)
	}

	c.SetState(state.Idle, now)
	run(c, now, 2*time.Second, nil)
	if g := c.Gaze(); g.X < 17.5 {
		t.Errorf("gaze did not return to pointer after thinking: %+v", g)
	}
}

func TestSourceHandOffIsSmooth(t *testing.T) {
	c := newStarted(state.Idle, constRand(0))
	c.SetPointer(Pointer{X: 1})
	now := run(c, epoch, 100*time.Millisecond, nil)
	prev := c.Gaze().X

	c.SetState(state.Thinking, now)
	now = now.Add(frame)
	c.Advance(now)
	// draw 0 puts the first saccade at x=-10; one frame must not get close.
	if jump := prev - c.Gaze().X; jump > 5 {
		t.Errorf("gaze snapped by %v in one frame on hand-off", jump)
	}
}

func TestVerticalOffsetApplied(t *testing.T) {
	tests := map[state.State]float64{
		state.Listening: -6,
		state.Attention: -10,
		state.Mouse:     0,
	}
	for s, want := range tests {
		c := newStarted(s, constRand(0.5))
		run(c, epoch, 3*time.Second, nil)
		if got := c.Gaze().Y; got < want-0.05 || got > want+0.05 {
			t.Errorf("%v: gaze y = %v, want %v", s, got, want)
		}
	}
}

func TestWaveMountsAndUnmounts(t *testing.T) {
	c := newStarted(state.Idle, seededRand(5))
	if c.Wave() != nil {
		t.Fatal("wave mounted outside speaking")
	}
	c.SetState(state.Speaking, epoch)
	now := run(c, epoch, time.Second, nil)
	w := c.Wave()
	if w == nil || !w.Animating() {
		t.Fatal("wave not animating while speaking")
	}
	if got := len(w.Heights(now)); got != WaveBars {
		t.Fatalf("wave has %d bars, want %d", got, WaveBars)
	}

	c.SetState(state.Idle, now)
	if c.Wave() == nil || c.Wave().Animating() {
		t.Fatal("wave should be fading, not animating, right after leaving speaking")
	}
	frozen := c.Wave().Heights(now)
	later := c.Wave().Heights(now.Add(150 * time.Millisecond))
	for i := range frozen {
		if frozen[i] != later[i] {
			t.Fatalf("bar %d still animating after exit: %v -> %v", i, frozen[i], later[i])
		}
	}
	run(c, now, 300*time.Millisecond, nil)
	if c.Wave() != nil {
		t.Error("wave still mounted after fade")
	}
	if f := c.Snapshot(); len(f.Wave) != 0 {
		t.Errorf("snapshot still carries %d bars", len(f.Wave))
	}
}

func TestWaveBarsWithinRange(t *testing.T) {
	w := NewWave(seededRand(9), epoch, 0)
	for i := 0; i < 400; i++ {
		for _, h := range w.Heights(epoch.Add(time.Duration(i) * 10 * time.Millisecond)) {
			if h < WaveMinHeight || h > WaveMaxHeight {
				t.Fatalf("bar height %v outside [%d,%d]", h, WaveMinHeight, WaveMaxHeight)
			}
		}
	}
}

func TestStopCancelsEveryTimer(t *testing.T) {
	calls := 0
	c := New(DefaultOptions(), countingRand(seededRand(21), &calls), nil)
	c.SetState(state.Thinking, epoch)
	c.Start(epoch)
	now := run(c, epoch, 10*time.Second, nil)
	if calls == 0 {
		t.Fatal("spy saw no timer activity before stop")
	}
	if c.PendingTimers() != 2 {
		t.Fatalf("expected blink and saccade armed, got %d", c.PendingTimers())
	}

	c.Stop()
	callsAtStop, framesAtStop := calls, c.Frames()
	blinksAtStop := c.Left().Blinks()
	target := c.SaccadeTarget()

	run(c, now, time.Minute, nil)

	if calls != callsAtStop {
		t.Errorf("timer callbacks fired after stop: %d -> %d", callsAtStop, calls)
	}
	if c.Frames() != framesAtStop || c.Left().Blinks() != blinksAtStop || c.SaccadeTarget() != target {
		t.Error("face kept animating after stop")
	}
	if c.PendingTimers() != 0 {
		t.Errorf("%d timers still armed after stop", c.PendingTimers())
	}
}

func TestStateChangeDoesNotAccumulateTimers(t *testing.T) {
	c := newStarted(state.Idle, seededRand(8))
	now := epoch
	for i := 0; i < 50; i++ {
		for _, s := range state.Sequence() {
			now = now.Add(frame)
			c.SetState(s, now)
			c.Advance(now)
		}
	}
	if got := c.PendingTimers(); got > 2 {
		t.Errorf("%d timers armed after repeated state changes", got)
	}
}

func TestEyesAreNeverIdentical(t *testing.T) {
	c := newStarted(state.Idle, constRand(0.5))
	c.SetPointer(Pointer{X: 0.3, Y: -0.2})
	run(c, epoch, 10*time.Second, func(time.Time) {
		if c.Left().Offset() == c.Right().Offset() {
			t.Fatalf("eyes rendered bit-identical offsets: %+v", c.Left().Offset())
		}
	})
}

func TestGesturePlaysOncePerTransition(t *testing.T) {
	c := newStarted(state.Idle, constRand(0.5))
	c.SetState(state.Error, epoch)
	now := run(c, epoch, 200*time.Millisecond, nil)
	if f := c.Snapshot(); f.Gesture != "error" || f.Transform.X == 0 {
		t.Errorf("shake not playing at 200ms: %+v", f.Transform)
	}
	now = run(c, now, time.Second, nil)
	if f := c.Snapshot(); f.Gesture != "none" || (f.Transform != Transform{}) {
		t.Errorf("gesture did not finish: %q %+v", f.Gesture, f.Transform)
	}

	// Re-selecting the same state is not a transition.
	c.SetState(state.Error, now)
	run(c, now, 200*time.Millisecond, nil)
	if (c.Gesture() != Transform{}) {
		t.Error("gesture replayed without a state transition")
	}
}

func TestStateChangeStampedAfterFrameStartsGesture(t *testing.T) {
	c := newStarted(state.Idle, constRand(0.5))
	tick := run(c, epoch, 200*time.Millisecond, nil).Add(frame)

	c.SetState(state.Success, tick.Add(2*time.Millisecond))
	c.Advance(tick)
	f := c.Snapshot()
	if f.Gesture != "success" {
		t.Errorf("Gesture = %q, want success", f.Gesture)
	}
	if want := GestureAt(state.GestureSuccess, 0); f.Transform != want {
		t.Errorf("Transform = %+v, want gesture start %+v", f.Transform, want)
	}

	c.Advance(tick.Add(frame))
	if got, want := c.Gesture(), GestureAt(state.GestureSuccess, frame-2*time.Millisecond); got != want {
		t.Errorf("next frame Transform = %+v, want %+v", got, want)
	}
}

func TestGestureForNonGestureStatesIsIdentity(t *testing.T) {
	for _, s := range append(state.Sequence(), state.Unknown) {
		g := state.GestureFor(s)
		if g != state.GestureNone {
			continue
		}
		if got := GestureAt(g, 300*time.Millisecond); (got != Transform{}) {
			t.Errorf("%v produced transform %+v", s, got)
		}
	}
	if got := GestureAt(state.GestureBounce, 325*time.Millisecond); got.Y > -21 {
		t.Errorf("bounce peak = %v, want about -22", got.Y)
	}
}

func TestUnknownStateFallsBackToNeutral(t *testing.T) {
	c := newStarted(state.Unknown, constRand(0.5))
	run(c, epoch, time.Second, nil)
	f := c.Snapshot()
	if f.Mood != "neutral" || f.ScaleY != 1 || f.Gesture != "none" {
		t.Errorf("unknown state not neutral: %+v", f)
	}
	if y := c.Gaze().Y; y < -0.05 || y > 0.05 {
		t.Errorf("unknown state applied a vertical offset: %v", y)
	}
}

func TestSleepingShowsZz(t *testing.T) {
	c := newStarted(state.Sleeping, constRand(0.5))
	run(c, epoch, 1100*time.Millisecond, nil)
	f := c.Snapshot()
	if !f.Sleeping || f.ZzOpacity < 0.9 {
		t.Errorf("Zz not visible mid-loop: %+v", f)
	}
}

func TestPointerFromCell(t *testing.T) {
	tests := []struct {
		col, row, w, h int
		want           Pointer
	}{
		{0, 0, 0, 0, Pointer{}},
		{49, 11, 100, 24, Pointer{X: -0.01, Y: -0.0416666}},
		{99, 23, 100, 24, Pointer{X: 0.99, Y: 0.9583333}},
		{500, -5, 100, 24, Pointer{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		got := PointerFromCell(tt.col, tt.row, tt.w, tt.h)
		if d := got.X - tt.want.X; d > 1e-6 || d < -1e-6 {
			t.Errorf("PointerFromCell(%d,%d).X = %v, want %v", tt.col, tt.row, got.X, tt.want.X)
		}
		if d := got.Y - tt.want.Y; d > 1e-6 || d < -1e-6 {
			t.Errorf("PointerFromCell(%d,%d).Y = %v, want %v", tt.col, tt.row, got.Y, tt.want.Y)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	c := newStarted(state.Speaking, seededRand(1))
	run(c, epoch, 500*time.Millisecond, nil)
	out := Render(c.Snapshot(), DefaultPalette(), termenv.TrueColor)
	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Fatalf("rendered %d lines, want %d", len(lines), Height)
	}
	for i, l := range lines {
		if w := components.VisibleLen(l); w != Width {
			t.Errorf("line %d is %d cells wide, want %d", i, w, Width)
		}
	}
}

func TestRenderEveryTerminalProfile(t *testing.T) {
	for _, s := range []state.State{state.Sleeping, state.Speaking, state.Error} {
		c := newStarted(s, seededRand(7))
		run(c, epoch, time.Second, nil)
		f := c.Snapshot()
		for _, p := range termtest.Profiles() {
			snap := termtest.CaptureSnapshot(s.String(), p, func(p termtest.TerminalProfile, w, h int) string {
				return Render(f, DefaultPalette(), p.Color)
			}, Width, Height)
			if err := termtest.ValidateGrid(snap.Content, Width, Height); err != nil {
				t.Errorf("%s on %s: %v", s, p.Name, err)
			}
			if err := termtest.ValidateColors(snap.Content, p); err != nil {
				t.Errorf("%s: %v", s, err)
			}
		}
	}
}

func TestRenderIsReproducible(t *testing.T) {
	p := *termtest.ProfileByName("ghostty")
	render := func(f Frame) func(termtest.TerminalProfile, int, int) string {
		return func(p termtest.TerminalProfile, w, h int) string {
			return Render(f, DefaultPalette(), p.Color)
		}
	}
	still := func() Frame {
		c := newStarted(state.Thinking, seededRand(3))
		run(c, epoch, time.Second, nil)
		return c.Snapshot()
	}

	want := termtest.CaptureSnapshot("thinking", p, render(still()), Width, Height)
	got := termtest.CaptureSnapshot("thinking", p, render(still()), Width, Height)
	if diffs := termtest.CompareSnapshots(want, got); diffs != nil {
		t.Errorf("same seed rendered differently: %+v", diffs)
	}
}

func TestRenderBlinkChangesOnlyEyeRows(t *testing.T) {
	p := *termtest.ProfileByName("generic")
	c := newStarted(state.Idle, constRand(0.5))
	run(c, epoch, 500*time.Millisecond, nil)
	open := c.Snapshot()
	shut := open
	shut.Left.Lid, shut.Right.Lid = 1, 1

	render := func(f Frame) func(termtest.TerminalProfile, int, int) string {
		return func(p termtest.TerminalProfile, w, h int) string {
			return Render(f, DefaultPalette(), p.Color)
		}
	}
	diffs := termtest.CompareSnapshots(
		termtest.CaptureSnapshot("open", p, render(open), Width, Height),
		termtest.CaptureSnapshot("shut", p, render(shut), Width, Height),
	)
	if len(diffs) == 0 {
		t.Fatal("closing both lids changed nothing")
	}
	first, last := marginRows+zzRows+1, marginRows+zzRows+eyeDiameterPx/2
	for _, d := range diffs {
		if d.Line < first || d.Line > last {
			t.Errorf("line %d changed, want only eye rows %d-%d", d.Line, first, last)
		}
	}
}

func TestRenderEyeLidCoversPupil(t *testing.T) {
	pal := DefaultPalette()
	open := RenderEye(EyeFrame{}, 1, pal, termenv.Ascii)
	if !strings.Contains(open, "█") {
		t.Fatalf("open eye shows no pupil:\n%s", open)
	}
	shut := RenderEye(EyeFrame{Lid: 1}, 1, pal, termenv.Ascii)
	if strings.ContainsAny(shut, "█▀▄") {
		t.Errorf("closed eye still shows ink:\n%s", shut)
	}
}
