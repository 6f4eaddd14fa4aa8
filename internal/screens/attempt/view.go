package attempt

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/quiz"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

// invalidFormat is shown in place of a prompt that cannot be decoded.
const invalidFormat = "Invalid question format"

func (a *AttemptScreen) View(width, height int) string {
	switch {
	case !a.loaded:
		return centered(width, height, theme.Muted.Render("Loading quiz…"))
	case a.errMsg != "":
		return centered(width, height, theme.ErrorText.Render(a.errMsg))
	case a.session.Phase() == quiz.PhaseEmpty:
		return centered(width, height, theme.Muted.Render("This quiz has no questions."))
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	answered := len(a.session.AnswerLog())
	b.WriteString(components.NewProgressBar("", answered, a.session.Len(), cw).View())
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("Question %d of %d · Score %d",
		a.session.CurrentIndex()+1, a.session.Len(), a.session.Score())))
	b.WriteString("\n\n")

	b.WriteString(components.Card(a.renderQuestion(cw), cw))
	b.WriteString("\n\n")

	if a.feedback != nil {
		b.WriteString(renderFeedback(*a.feedback))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (a *AttemptScreen) renderQuestion(cw int) string {
	var b strings.Builder
	if a.decodeErr != nil {
		b.WriteString(theme.ErrorText.Render(invalidFormat))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Width(cw - 6).
			Render(a.question.Text))
	}
	b.WriteString("\n\n")

	if a.mode == modeChoice {
		b.WriteString(a.choice.View())
	} else {
		b.WriteString(a.input.View())
	}
	return b.String()
}

func renderFeedback(rec quiz.AnswerRecord) string {
	if rec.IsCorrect {
		return theme.Correct.Render("✓ Correct!")
	}
	return theme.Incorrect.Render("✗ Not quite.") + " " +
		theme.Body.Render("Answer: "+rec.CorrectAnswer)
}

func centered(width, height int, s string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
