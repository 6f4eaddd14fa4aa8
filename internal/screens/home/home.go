package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/router"
	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/screens/compose"
	"github.com/abhisek/learninghub/internal/screens/flashcards"
	"github.com/abhisek/learninghub/internal/screens/placeholder"
	"github.com/abhisek/learninghub/internal/screens/quizlist"
	"github.com/abhisek/learninghub/internal/store"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/layout"
)

type usageMsg struct {
	usage *store.Usage
	err   error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc     *library.Service
	profile string
	menu    components.Menu
	usage   *store.Usage
	errMsg  string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen. When canGenerate is false the generate entries
// lead to a notice instead of the compose screen.
func New(svc *library.Service, profile string, canGenerate bool) *HomeScreen {
	push := func(s screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}
	generate := func(kind compose.Kind, title string) func() tea.Cmd {
		return func() tea.Cmd {
			var s screen.Screen
			if canGenerate {
				s = compose.New(svc, profile, kind)
			} else {
				s = placeholder.Unconfigured(title)
			}
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "NEW QUIZ", Action: generate(compose.KindQuiz, "New Quiz")},
		{Label: "NEW FLASHCARDS", Action: generate(compose.KindFlashcards, "New Flashcards")},
		{Label: "MY QUIZZES", Action: func() tea.Cmd {
			return push(quizlist.New(svc, profile))()
		}},
		{Label: "MY FLASHCARDS", Action: func() tea.Cmd {
			return push(flashcards.New(svc, profile))()
		}},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		svc:     svc,
		profile: profile,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadUsage()
}

// OnResume refreshes allowances after a generation or reset.
func (h *HomeScreen) OnResume() tea.Cmd {
	return h.loadUsage()
}

func (h *HomeScreen) loadUsage() tea.Cmd {
	svc, profile := h.svc, h.profile
	return func() tea.Msg {
		u, err := svc.Usage(context.Background(), profile)
		return usageMsg{usage: u, err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if um, ok := msg.(usageMsg); ok {
		if um.err != nil {
			h.errMsg = um.err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.usage = um.usage
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, h.profile),
		renderUsageBar(h.usage, cw),
	}
	if layout.IsCompactHeight(height + 8) {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
