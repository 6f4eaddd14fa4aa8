package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/ui/theme"
)

// OptionLabels are the letters shown beside multiple-choice options.
var OptionLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a multiple-choice selector. It reports the chosen option
// text; judging is left to the caller.
type MultiChoice struct {
	Options   []string
	Selected  int
	Submitted bool

	// Correct is the option to highlight once submitted, -1 when unknown.
	Correct int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Correct: -1,
	}
}

// Update handles keyboard navigation. Letter keys jump to an option.
// The returned bool is true when enter was pressed on this update.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Submitted {
		return m, false
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "a", "b", "c", "d":
		if i := int(key[0] - 'a'); i < len(m.Options) {
			m.Selected = i
		}
	case "enter":
		if len(m.Options) == 0 {
			return m, false
		}
		m.Submitted = true
		return m, true
	}

	return m, false
}

// Choice returns the selected option text.
func (m MultiChoice) Choice() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Reveal marks the option matching answer as the correct one.
func (m *MultiChoice) Reveal(answer string) {
	m.Correct = -1
	for i, opt := range m.Options {
		if opt == answer {
			m.Correct = i
			return
		}
	}
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		label := "?"
		if i < len(OptionLabels) {
			label = OptionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.Correct:
			style = theme.Correct
		case m.Submitted && i == m.Selected:
			style = theme.Incorrect
		case m.Submitted:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
