// Package app holds the bubbletea plumbing shared by the copilot-face
// screens: the message types, the frame tick command and the key map.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// FrameEvent is one animation frame. Gen is the generation of the frame
// loop that scheduled it; a receiver drops events whose Gen is not its
// current generation, so a stopped or restarted loop never acts on a
// tick that was already in flight.
type FrameEvent struct {
	Gen  uint64
	Time time.Time
}

// StateChangeEvent asks the root model to switch the expressive state.
type StateChangeEvent struct {
	State  state.State
	Source string // "key", "click", "auto" or "flag"
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}
