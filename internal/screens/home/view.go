package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/store"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

const titleCompact = "L · E · A · R · N · I · N · G · H · U · B"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

func renderTitle(cw int, profile string) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true).
		Render(titleCompact)
	sub := theme.Muted.Render("profile: " + profile)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderUsageBar shows how many generations the profile has left.
func renderUsageBar(u *store.Usage, cw int) string {
	var stats string
	if u == nil {
		stats = theme.Muted.Render("loading allowances…")
	} else {
		quizStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
		cardStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)
		stats = fmt.Sprintf("%s    %s",
			quizStyle.Render(fmt.Sprintf("? %d/%d QUIZZES LEFT", u.QuizzesRemaining(), u.QuizLimit)),
			cardStyle.Render(fmt.Sprintf("▤ %d/%d CARDS LEFT", u.FlashcardsRemaining(), u.FlashcardLimit)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(m components.Menu, cw int) string {
	disabled := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if item.Disabled {
			buttons = append(buttons, disabled.Render(item.Label))
			continue
		}
		buttons = append(buttons, components.Button(item.Label, i == m.Selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as text lines for short terminals
// where bordered buttons would overflow.
func renderMenuCompact(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View())
}

// renderFrame wraps content in a double-border frame centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderError(msg string) string {
	return theme.ErrorText.Render(msg)
}
