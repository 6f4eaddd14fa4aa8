package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

// NoticeScreen shows a fixed message in place of a feature that cannot run,
// such as generation without a configured LLM provider.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

// Unconfigured returns the notice shown when no LLM provider is set up.
func Unconfigured(title string) *NoticeScreen {
	return New(title, "╌╌ AI generation is not configured ╌╌\n\n"+
		"Set LEARNINGHUB_LLM_PROVIDER and the matching API key,\n"+
		"or add an llm section to your config file.")
}

func (p *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (p *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *NoticeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.message)
}

func (p *NoticeScreen) Title() string {
	return p.title
}
