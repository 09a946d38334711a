package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Capabilities is the cached terminal summary for the current session.
type Capabilities struct {
	Term       Terminal
	Size       Size
	TTY        bool // stdout is a terminal
	TrueColor  bool
	Hyperlinks bool
	MouseSGR   bool
	SSH        bool
	Mux        bool // inside tmux or screen
}

var (
	cached     *Capabilities
	detectOnce sync.Once
)

// DetectCapabilities performs detection once and caches the result. Safe
// for concurrent use.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// Links reports whether OSC 8 hyperlinks reach the terminal. tmux and
// screen drop them unless configured to pass them through.
func (c *Capabilities) Links() bool {
	return c.Hyperlinks && !c.Mux
}

// CoarsePointer reports whether mouse motion may arrive late, clipped to
// 223 columns, or not at all.
func (c *Capabilities) CoarsePointer() bool {
	return !c.MouseSGR || c.Mux
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin and MSYS ptys.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func detect() *Capabilities {
	term := Detect()
	tmux := os.Getenv("TMUX") != ""
	screen := os.Getenv("STY") != ""

	trueColor := term.SupportsTrueColor()
	if !trueColor {
		ct := os.Getenv("COLORTERM")
		trueColor = ct == "truecolor" || ct == "24bit"
	}

	return &Capabilities{
		Term:       term,
		Size:       GetSize(),
		TTY:        IsTerminal(os.Stdout),
		TrueColor:  trueColor,
		Hyperlinks: term.SupportsHyperlinks(),
		MouseSGR:   term.SupportsMouseSGR(),
		SSH:        isSSH(),
		Mux:        tmux || screen,
	}
}
