// Package termtest provides terminal profiles and render checks for tests:
// every screen the face draws must keep its exact cell grid under every
// color profile, and snapshots of two renders can be compared line by
// line.
package termtest

import "github.com/muesli/termenv"

// TerminalProfile describes a terminal for testing.
type TerminalProfile struct {
	Name       string            // matches terminal.Terminal.String()
	EnvVars    map[string]string // environment the terminal sets
	Color      termenv.Profile
	Hyperlinks bool
	MouseSGR   bool
}

// Profiles returns the known terminal profiles, one per color depth and
// then some.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		{
			Name:       "ghostty",
			EnvVars:    map[string]string{"TERM_PROGRAM": "ghostty", "TERM": "xterm-ghostty", "COLORTERM": "truecolor"},
			Color:      termenv.TrueColor,
			Hyperlinks: true,
			MouseSGR:   true,
		},
		{
			Name:       "kitty",
			EnvVars:    map[string]string{"TERM": "xterm-kitty", "KITTY_WINDOW_ID": "1"},
			Color:      termenv.TrueColor,
			Hyperlinks: true,
			MouseSGR:   true,
		},
		{
			Name:       "tilix",
			EnvVars:    map[string]string{"VTE_VERSION": "6003", "TILIX_ID": "a", "TERM": "xterm-256color"},
			Color:      termenv.ANSI256,
			Hyperlinks: true,
			MouseSGR:   true,
		},
		{
			Name:    "tmux",
			EnvVars: map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0", "TERM": "tmux-256color"},
			Color:   termenv.ANSI256,
		},
		{
			Name:    "linux",
			EnvVars: map[string]string{"TERM": "linux"},
			Color:   termenv.ANSI,
		},
		{
			Name:    "generic",
			EnvVars: map[string]string{"TERM": "dumb"},
			Color:   termenv.Ascii,
		},
	}
}

// ProfileByName returns the profile matching name, or nil.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}
