// Package state defines the twelve expressive states of the copilot face
// and the fixed tables that map each state to a mood, a vertical gaze
// offset, and a container gesture.
//
// Every table has an explicit default branch: a state value outside the
// enumeration (for example one parsed from an unknown config string) maps
// to the neutral entry instead of failing.
package state

import "strings"

// State identifies the behavioral mode of the face.
type State int

const (
	Idle State = iota
	Listening
	Thinking
	Speaking
	Success
	Error
	Loading
	Sleeping
	Mouse
	Attention
	Prompt
	Bounce

	// Unknown is returned by Parse for text that names no state. It is
	// never part of Sequence and maps to neutral in every table.
	Unknown State = -1
)

// stateNames maps State values to their tag strings.
var stateNames = [...]string{
	Idle:      "idle",
	Listening: "listening",
	Thinking:  "thinking",
	Speaking:  "speaking",
	Success:   "success",
	Error:     "error",
	Loading:   "loading",
	Sleeping:  "sleeping",
	Mouse:     "mouse",
	Attention: "attention",
	Prompt:    "prompt",
	Bounce:    "bounce",
}

// String returns the tag of the state, or "unknown".
func (s State) String() string {
	if s.Valid() {
		return stateNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the twelve enumerated states.
func (s State) Valid() bool {
	return s >= 0 && int(s) < len(stateNames)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized text
// yields Unknown rather than an error.
func (s *State) UnmarshalText(text []byte) error {
	*s = Parse(string(text))
	return nil
}

// Parse returns the state named by tag (case-insensitive, surrounding
// whitespace ignored). Unrecognized tags return Unknown.
func Parse(tag string) State {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, name := range stateNames {
		if name == tag {
			return State(i)
		}
	}
	return Unknown
}

// Sequence returns the fixed auto-cycle order of all twelve states.
// The returned slice is a fresh copy.
func Sequence() []State {
	return []State{
		Idle, Listening, Thinking, Speaking, Success, Error,
		Loading, Sleeping, Mouse, Attention, Prompt, Bounce,
	}
}

// Next returns the state after s in Sequence, wrapping from Bounce back
// to Idle. Unknown advances to Idle.
func Next(s State) State {
	if !s.Valid() {
		return Idle
	}
	seq := Sequence()
	return seq[(int(s)+1)%len(seq)]
}

// BlinkSuppressed reports whether blinking is disabled in s.
func BlinkSuppressed(s State) bool {
	switch s {
	case Listening, Loading, Sleeping:
		return true
	default:
		return false
	}
}

// VerticalOffset returns the gaze offset, in face units, added to the
// pupil target's y in s. Negative values look up.
func VerticalOffset(s State) float64 {
	switch s {
	case Listening:
		return -6
	case Attention:
		return -10
	default:
		return 0
	}
}
