package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/quiz"
	"github.com/abhisek/learninghub/internal/router"
	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/ui/layout"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz attempt.
type SummaryScreen struct {
	summary quiz.Summary
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.summary.Entries)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n")
	if sum.QuizName != "" {
		b.WriteString(center.Foreground(theme.TextDim).Render(sum.QuizName))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center.Foreground(scoreColor(sum.Percent)).Bold(true).Render(
		fmt.Sprintf("Score: %d / %d  (%d%%)", sum.Score, sum.Total, sum.Percent)))
	b.WriteString("\n\n")

	// Each entry takes four lines; show as many as fit below the header.
	visible := max((height-8)/4, 1)
	end := min(s.offset+visible, len(sum.Entries))
	for _, e := range sum.Entries[s.offset:end] {
		b.WriteString(renderEntry(e, width))
	}
	if end < len(sum.Entries) {
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("… %d more", len(sum.Entries)-end)))
	}

	return b.String()
}

func renderEntry(e quiz.ReviewEntry, width int) string {
	mark := theme.Correct.Render("✓")
	if !e.IsCorrect {
		mark = theme.Incorrect.Render("✗")
	}

	text := e.Question.Text
	if e.DecodeErr != nil {
		text = "Invalid question format"
	}

	indent := "    "
	line := lipgloss.NewStyle().Width(width - 4).Render(
		fmt.Sprintf("  %s %d. %s", mark, e.Index+1, text))

	picked := lipgloss.NewStyle().Foreground(theme.Error)
	if e.IsCorrect {
		picked = lipgloss.NewStyle().Foreground(theme.Success)
	}
	out := line + "\n" +
		indent + theme.Muted.Render("Your answer: ") + picked.Render(e.UserAnswer) + "\n"
	if !e.IsCorrect {
		out += indent + theme.Muted.Render("Correct:     ") + theme.Correct.Render(e.CorrectAnswer) + "\n"
	}
	return out + "\n"
}

func scoreColor(percent int) color.Color {
	switch {
	case percent >= 80:
		return theme.Success
	case percent >= 50:
		return theme.Accent
	default:
		return theme.Error
	}
}
