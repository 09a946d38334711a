package termtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Snapshot captures rendered output for comparison testing.
type Snapshot struct {
	Name     string // descriptive name
	Terminal string // terminal profile name used
	Width    int
	Height   int
	Content  string
}

// CaptureSnapshot renders content at the given size under profile p.
func CaptureSnapshot(name string, p TerminalProfile, renderFn func(p TerminalProfile, w, h int) string, width, height int) Snapshot {
	return Snapshot{
		Name:     name,
		Terminal: p.Name,
		Width:    width,
		Height:   height,
		Content:  renderFn(p, width, height),
	}
}

// Plain returns the content with escape sequences removed.
func (s Snapshot) Plain() string { return ansi.Strip(s.Content) }

// Diff describes a single line difference between two snapshots.
type Diff struct {
	Line     int // 1-based
	Expected string
	Actual   string
}

// CompareSnapshots checks two snapshots line by line and returns the
// differing lines, or nil when they match.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	expectedLines := ttSplitLines(expected.Content)
	actualLines := ttSplitLines(actual.Content)

	var diffs []Diff
	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{Line: i + 1, Expected: eLine, Actual: aLine})
		}
	}
	return diffs
}

// ttSplitLines splits a string into lines; the empty string is one empty
// line.
func ttSplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
