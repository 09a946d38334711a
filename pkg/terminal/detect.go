// Package terminal identifies the terminal the face runs in and reports
// what it can draw: true color, OSC 8 hyperlinks, SGR mouse reporting and
// the current size. Detection reads environment variables only; the size
// comes from the tty.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermTilix
	TermGNOME
	TermTmux
	TermScreen
	TermVSCode
	TermEmacs
	TermLinuxConsole
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown:      "unknown",
	TermGhostty:      "ghostty",
	TermKitty:        "kitty",
	TermWezTerm:      "wezterm",
	TermITerm2:       "iterm2",
	TermAlacritty:    "alacritty",
	TermTilix:        "tilix",
	TermGNOME:        "gnome-terminal",
	TermTmux:         "tmux",
	TermScreen:       "screen",
	TermVSCode:       "vscode",
	TermEmacs:        "emacs",
	TermLinuxConsole: "linux",
	TermGeneric:      "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// modern terminals draw 24-bit color, OSC 8 links and SGR mouse reports.
func (t Terminal) modern() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermTilix, TermGNOME:
		return true
	default:
		return false
	}
}

// SupportsTrueColor reports whether the terminal draws 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	return t.modern() || t == TermVSCode
}

// SupportsHyperlinks reports whether the terminal turns OSC 8 sequences
// into clickable links.
func (t Terminal) SupportsHyperlinks() bool {
	return t.modern() || t == TermVSCode
}

// SupportsMouseSGR reports whether the terminal reports mouse motion with
// SGR (1006) encoding, which the pointer tracking relies on for wide
// terminals.
func (t Terminal) SupportsMouseSGR() bool {
	return t.modern()
}

// Detect identifies the terminal emulator from environment variables,
// most reliable signal first: TERM_PROGRAM, TERM, emulator-specific
// variables, then multiplexers.
func Detect() Terminal {
	if t, ok := byTermProgram[strings.ToLower(os.Getenv("TERM_PROGRAM"))]; ok {
		return t
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case term == "linux":
		return TermLinuxConsole
	case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
		return TermScreen
	}

	for _, s := range byMarkerVar {
		if os.Getenv(s.name) != "" {
			return s.term
		}
	}
	if os.Getenv("VTE_VERSION") != "" {
		if os.Getenv("TILIX_ID") != "" {
			return TermTilix
		}
		return TermGNOME
	}
	if os.Getenv("INSIDE_EMACS") != "" {
		return TermEmacs
	}

	// Multiplexers last so the inner terminal wins when it is known.
	if os.Getenv("TMUX") != "" {
		return TermTmux
	}
	if os.Getenv("STY") != "" {
		return TermScreen
	}
	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	return TermGeneric
}

var byTermProgram = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

var byMarkerVar = []struct {
	name string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
