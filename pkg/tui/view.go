package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/copilot-face/pkg/components"
	"gitlab.com/tinyland/lab/copilot-face/pkg/controls"
	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
)

// Card chrome: a rounded border plus one column of padding per side.
const (
	tuiCardChromeW = 4
	tuiCardChromeH = 2
	tuiFaceCardW   = face.Width + tuiCardChromeW
	tuiDetailsMinW = 34
	tuiDetailsMaxW = 60
	tuiGap         = 2
)

var tuiDetails = []string{
	"Humanized: variable timing, asymmetric movements, micro drift",
	"Emotion: eye shape adapts from excited to sleepy",
	"Realism: saccades, fixation pauses, natural blink patterns",
	"Polish: refined springs, smooth transitions, no distortion",
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.width < tuiFaceCardW || m.height < face.Height+tuiCardChromeH {
		msg := fmt.Sprintf("terminal too small: need %dx%d, have %dx%d",
			tuiFaceCardW, face.Height+tuiCardChromeH, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	sections := []string{m.hero.View(m.width, m.th), ""}
	sections = append(sections, m.tuiShowcase())
	sections = append(sections, "", m.tuiFooter(), m.help.View(m.keys))

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// tuiShowcase lays the face card and the details card side by side when
// they fit, stacked otherwise.
func (m Model) tuiShowcase() string {
	faceCard := m.tuiFaceCard()

	detailsW := m.width - tuiFaceCardW - tuiGap
	sideBySide := detailsW >= tuiDetailsMinW
	if !sideBySide {
		detailsW = m.width
	}
	detailsW = min(detailsW, tuiDetailsMaxW)
	details := m.tuiDetailsCard(detailsW)

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, faceCard, strings.Repeat(" ", tuiGap), details)
	}
	return lipgloss.JoinVertical(lipgloss.Left, faceCard, details)
}

func (m Model) tuiFaceCard() string {
	badge := controls.Badge(m.current.String(), m.panel.Auto(), m.th)
	body := face.Render(m.face.Snapshot(), m.th.FacePalette(), m.profile)
	return m.tuiCard().Render(lipgloss.JoinVertical(lipgloss.Left, badge, body))
}

func (m Model) tuiDetailsCard(width int) string {
	inner := width - tuiCardChromeW
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.th.Foreground)).Render("Behavior Details")

	bullet := lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.Dim)).Width(inner)
	lines := []string{title}
	for _, d := range tuiDetails {
		lines = append(lines, bullet.Render("• "+d))
	}
	lines = append(lines, "", m.panel.View(inner, m.th))
	return m.tuiCard().Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) tuiCard() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.th.Border)).
		Padding(0, 1)
}

func (m Model) tuiFooter() string {
	text := "Built with bubbletea, lipgloss and harmonica. Carefully tuned springs."
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.Dim)).
		Render(components.Truncate(text, m.width))
}

func helpStyles(th theme.Theme) help.Styles {
	s := help.New().Styles
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpKey))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpDesc))
	s.ShortKey, s.FullKey = keyStyle, keyStyle
	s.ShortDesc, s.FullDesc = descStyle, descStyle
	s.ShortSeparator = descStyle
	s.FullSeparator = descStyle
	return s
}
