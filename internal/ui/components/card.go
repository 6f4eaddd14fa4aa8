package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/ui/theme"
)

const (
	maxContentWidth = 70
	minContentWidth = 20
)

// ContentWidth is the inner width shared by every boxed section: the frame
// minus border and padding, clamped to a readable range.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

func box(border lipgloss.Border, c color.Color, cw int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(c).
		Width(cw - 2).
		Padding(1, 2)
}

// Card wraps content in a rounded box.
func Card(content string, cw int) string {
	return box(lipgloss.RoundedBorder(), theme.Border, cw).Render(content)
}

// FlipCard renders one face of a flashcard; the answer side uses the accent
// border.
func FlipCard(content string, back bool, cw int) string {
	c := theme.Primary
	if back {
		c = theme.Accent
	}
	return box(lipgloss.DoubleBorder(), c, cw).
		Height(7).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Button renders a boxed menu label. The selected one is filled and gets a
// pointer.
func Button(label string, selected bool, width int) string {
	st := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !selected {
		return st.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
	return st.Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		BorderForeground(theme.Highlight).
		Render("▸ " + label)
}
