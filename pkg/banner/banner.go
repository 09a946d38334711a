// Package banner renders the face once, non-interactively, for shell
// startup and scripts. A fresh controller is run off-screen until the
// entry gesture has settled, and the resulting frame is drawn inside a
// card sized to the terminal.
package banner

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/copilot-face/pkg/controls"
	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
)

// DefaultSettle is long enough for the longest gesture to finish.
const DefaultSettle = 1500 * time.Millisecond

// bnStep is the simulated frame interval.
const bnStep = time.Second / 30

// Preset defines a named layout with the size it needs.
type Preset struct {
	Name   string
	Width  int
	Height int
}

var (
	// Card draws the state badge above the face, inside a rounded border.
	Card = Preset{"card", face.Width + 4, face.Height + 5}
	// Bare draws the face alone.
	Bare = Preset{"bare", face.Width, face.Height}
)

// SelectPreset returns the largest preset that fits the terminal. Bare is
// returned when nothing fits.
func SelectPreset(cols, rows int) Preset {
	for _, p := range []Preset{Card, Bare} {
		if cols >= p.Width && rows >= p.Height {
			return p
		}
	}
	return Bare
}

// Still runs a controller in state s from now for settle and returns its
// last frame. A negative settle is treated as zero.
func Still(opts face.Options, s state.State, now time.Time, settle time.Duration, rnd sched.RandFunc) face.Frame {
	c := face.New(opts, rnd, nil)
	c.SetState(s, now)
	c.Start(now)
	defer c.Stop()

	for end := now.Add(settle); now.Before(end); {
		now = now.Add(bnStep)
		c.Advance(now)
	}
	return c.Snapshot()
}

// Render draws f under the given preset. s names the badge shown by the
// card preset.
func Render(f face.Frame, s state.State, th theme.Theme, p termenv.Profile, preset Preset) string {
	body := face.Render(f, th.FacePalette(), p)
	if preset.Name != Card.Name {
		return body
	}
	badge := controls.Badge(s.String(), true, th)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Border)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, badge, body))
}
