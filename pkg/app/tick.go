package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameCmd returns a Cmd that sends a FrameEvent for generation gen after
// d. The caller schedules the next frame when it handles this one.
func FrameCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameEvent{Gen: gen, Time: t}
	})
}

// ThemeCmd returns a Cmd that asks the root model to switch to the named
// theme.
func ThemeCmd(name string) tea.Cmd {
	return func() tea.Msg { return ThemeChangeEvent{Theme: name} }
}
