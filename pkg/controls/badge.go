package controls

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
)

// Badge renders a rounded pill with a status dot and a label. An active
// badge takes the accent border and the "on" dot color.
func Badge(label string, active bool, th theme.Theme) string {
	border, dot, text := th.Border, th.BadgeOff, th.Dim
	if active {
		border, dot, text = th.BadgeOn, th.BadgeOn, th.Foreground
	}
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(dot)).Render("●") +
		" " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Render(label)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Render(body)
}
