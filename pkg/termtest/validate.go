package termtest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// ValidateGrid checks that content is exactly height lines of exactly
// width cells each, escape sequences excluded.
func ValidateGrid(content string, width, height int) error {
	lines := strings.Split(content, "\n")
	if len(lines) != height {
		return fmt.Errorf("got %d lines, want %d", len(lines), height)
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != width {
			return fmt.Errorf("line %d is %d cells, want %d", i+1, w, width)
		}
	}
	return nil
}

// ValidateMaxWidth checks that no line of content is wider than width.
func ValidateMaxWidth(content string, width int) error {
	for i, l := range strings.Split(content, "\n") {
		if w := ansi.StringWidth(l); w > width {
			return fmt.Errorf("line %d is %d cells, want at most %d", i+1, w, width)
		}
	}
	return nil
}

// ValidateColors checks that content carries no color escapes when the
// profile has no colors, and some when it does.
func ValidateColors(content string, p TerminalProfile) error {
	colored := strings.Contains(content, "\x1b[")
	switch {
	case p.Color == termenv.Ascii && colored:
		return fmt.Errorf("terminal %q: escape sequences in colorless output", p.Name)
	case p.Color != termenv.Ascii && !colored:
		return fmt.Errorf("terminal %q: no color in output", p.Name)
	}
	return nil
}
