// Package controls renders the state picker: one button per expressive
// state, an auto-cycle toggle and the state badge. The panel never owns
// the current state; it reports requested changes to its owner and
// mirrors whatever the owner applies through SetCurrent.
package controls

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/copilot-face/pkg/app"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
)

// Panel is the control panel.
type Panel struct {
	zones  *zone.Manager
	prefix string
	keys   app.KeyMap
	logger *slog.Logger

	seq     []state.State
	current state.State
	cursor  int
	auto    *AutoCycle
}

// New returns a panel whose auto cycle steps every interval. zones may be
// nil, in which case buttons are not clickable.
func New(zones *zone.Manager, keys app.KeyMap, interval time.Duration, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	prefix := "controls-"
	if zones != nil {
		prefix = zones.NewPrefix()
	}
	return &Panel{
		zones:   zones,
		prefix:  prefix,
		keys:    keys,
		logger:  logger,
		seq:     state.Sequence(),
		current: state.Idle,
		auto:    NewAutoCycle(interval),
	}
}

// Start enables the auto cycle when auto is set.
func (p *Panel) Start(now time.Time, auto bool) {
	if auto {
		p.auto.Enable(now)
	}
}

// Stop disables the auto cycle.
func (p *Panel) Stop() { p.auto.Disable() }

// SetCurrent mirrors the owner's current state and moves the keyboard
// cursor onto it.
func (p *Panel) SetCurrent(s state.State) {
	p.current = s
	if s.Valid() {
		p.cursor = int(s)
	}
}

// Current returns the mirrored state.
func (p *Panel) Current() state.State { return p.current }

// Cursor returns the state under the keyboard cursor.
func (p *Panel) Cursor() state.State { return p.seq[p.cursor] }

// Auto reports whether the auto cycle is running.
func (p *Panel) Auto() bool { return p.auto.Enabled() }

// Cycle exposes the auto cycle.
func (p *Panel) Cycle() *AutoCycle { return p.auto }

// Pick requests s and disables the auto cycle.
func (p *Panel) Pick(s state.State, source string) app.StateChangeEvent {
	if p.auto.Enabled() {
		p.logger.Debug("auto cycle stopped by pick", "state", s, "source", source)
	}
	p.auto.Disable()
	return app.StateChangeEvent{State: s, Source: source}
}

// ToggleAuto flips the auto cycle.
func (p *Panel) ToggleAuto(now time.Time) {
	if p.auto.Enabled() {
		p.auto.Disable()
	} else {
		p.auto.Enable(now)
	}
	p.logger.Debug("auto cycle toggled", "enabled", p.auto.Enabled())
}

// Advance runs the auto cycle to now and reports the state it selected.
func (p *Panel) Advance(now time.Time) (app.StateChangeEvent, bool) {
	s, ok := p.auto.Advance(now)
	if !ok {
		return app.StateChangeEvent{}, false
	}
	return app.StateChangeEvent{State: s, Source: "auto"}, true
}

// Update handles keys and clicks. It reports a state change when the
// message picks a state.
func (p *Panel) Update(msg tea.Msg, now time.Time) (app.StateChangeEvent, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Pick):
			if s, ok := app.StateForKey(msg); ok {
				return p.Pick(s, "key"), true
			}
		case key.Matches(msg, p.keys.Next):
			p.cursor = (p.cursor + 1) % len(p.seq)
		case key.Matches(msg, p.keys.Prev):
			p.cursor = (p.cursor - 1 + len(p.seq)) % len(p.seq)
		case key.Matches(msg, p.keys.Select):
			return p.Pick(p.seq[p.cursor], "key"), true
		case key.Matches(msg, p.keys.Auto):
			p.ToggleAuto(now)
		}

	case tea.MouseMsg:
		if p.zones == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		for i, s := range p.seq {
			if p.zones.Get(p.zoneID(s.String())).InBounds(msg) {
				p.cursor = i
				return p.Pick(s, "click"), true
			}
		}
		if p.zones.Get(p.zoneID("auto")).InBounds(msg) {
			p.ToggleAuto(now)
		}
	}
	return app.StateChangeEvent{}, false
}

func (p *Panel) zoneID(name string) string { return p.prefix + name }

func (p *Panel) mark(name, s string) string {
	if p.zones == nil {
		return s
	}
	return p.zones.Mark(p.zoneID(name), s)
}

// View renders the buttons wrapped to width cells, then the auto-cycle
// checkbox.
func (p *Panel) View(width int, th theme.Theme) string {
	if width < 1 {
		width = 1
	}
	var rows []string
	var row []string
	rowWidth := 0
	for i, s := range p.seq {
		btn := p.mark(s.String(), p.button(s, i == p.cursor, th))
		w := lipgloss.Width(btn)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, btn)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	box := "[ ]"
	if p.auto.Enabled() {
		box = "[x]"
	}
	toggle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).
		Render(box + " auto cycle")
	rows = append(rows, "", p.mark("auto", toggle))
	return strings.Join(rows, "\n")
}

func (p *Panel) button(s state.State, focused bool, th theme.Theme) string {
	bg, fg := th.Button, th.ButtonText
	if s == p.current {
		bg, fg = th.ButtonActive, th.ButtonActiveText
	}
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).Background(lipgloss.Color(bg)).
		Render(app.KeyForState(s) + " ")
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg)).
		Underline(focused).Bold(focused).Render(s.String())
	pad := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(" ")
	return pad + hint + label + pad
}
