// Package hero renders the banner above the face: a live badge, the title,
// a tagline and a link to the interactive 3D scene.
package hero

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/copilot-face/pkg/components"
	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
)

// Hero holds the banner text.
type Hero struct {
	Title    string
	Tagline  string
	Badge    string
	SceneURL string
	// Hyperlinks selects OSC 8 links. Without them the URL is printed.
	Hyperlinks bool
}

// View renders the banner centered in width cells.
func (h Hero) View(width int, th theme.Theme) string {
	if width < 1 {
		width = 1
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var lines []string
	if h.Badge != "" {
		badge := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(th.Border)).
			Foreground(lipgloss.Color(th.Dim)).
			Padding(0, 1).
			Render(lipgloss.NewStyle().Foreground(lipgloss.Color(th.BadgeOn)).Render("●") + " " + h.Badge)
		lines = append(lines, center.Render(badge))
	}
	if h.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Foreground)).
			Render(components.Truncate(h.Title, width))
		lines = append(lines, center.Render(title))
	}
	if h.Tagline != "" {
		tag := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).Width(min(width, 72)).
			Align(lipgloss.Center).Render(h.Tagline)
		lines = append(lines, center.Render(tag))
	}
	if link := h.link(width); link != "" {
		lines = append(lines, center.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Underline(true).Render(link)))
	}
	return strings.Join(lines, "\n")
}

// link returns the scene link text, or "" when there is no URL.
func (h Hero) link(width int) string {
	if h.SceneURL == "" {
		return ""
	}
	if h.Hyperlinks {
		return components.Hyperlink("open the 3D scene ↗", h.SceneURL)
	}
	return components.Truncate("3D scene: "+h.SceneURL, width)
}
