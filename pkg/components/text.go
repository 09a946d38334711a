// Package components provides the ANSI-aware text primitives and the
// half-block pixel canvas the copilot face is drawn with.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored and wide characters count as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, keeping any escape
// sequences that appear before the cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// PadRight pads s with trailing spaces to width visible cells.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter centers s within width cells. Odd padding goes on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Hyperlink wraps text in an OSC 8 hyperlink to url. Terminals without
// OSC 8 support show the text alone.
func Hyperlink(text, url string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// Block normalizes a multi-line string into exactly height lines of
// exactly width visible cells, truncating or padding as needed.
func Block(s string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		out[i] = PadRight(Truncate(line, width), width)
	}
	return out
}

// Place positions block lines inside a width x height area at column x,
// row y. Lines that would fall outside the area are dropped; columns past
// the right edge are truncated. Negative x clips the left side.
func Place(lines []string, width, height, x, y int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	for i, line := range lines {
		ry := y + i
		if ry < 0 || ry >= height {
			continue
		}
		if x < 0 {
			line = ansi.TruncateLeft(line, -x, "")
		} else {
			line = strings.Repeat(" ", x) + line
		}
		rows[ry] = PadRight(Truncate(line, width), width)
	}
	return strings.Join(rows, "\n")
}
