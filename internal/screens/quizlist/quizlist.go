// Package quizlist is the paginated list of a profile's saved quizzes.
package quizlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/router"
	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/screens/attempt"
	"github.com/abhisek/learninghub/internal/store"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/layout"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

type pageMsg struct {
	page  int
	packs []store.PackSummary
	total int
	err   error
}

type deletedMsg struct {
	err error
}

// ListScreen shows quizzes a page at a time.
type ListScreen struct {
	svc     *library.Service
	profile string

	page     int
	packs    []store.PackSummary
	total    int
	selected int
	loading  bool

	confirmDelete bool
	errMsg        string
}

var (
	_ screen.Screen          = (*ListScreen)(nil)
	_ screen.Resumer         = (*ListScreen)(nil)
	_ screen.KeyHintProvider = (*ListScreen)(nil)
)

// New creates a ListScreen on the first page.
func New(svc *library.Service, profile string) *ListScreen {
	return &ListScreen{svc: svc, profile: profile, page: 1, loading: true}
}

func (l *ListScreen) Init() tea.Cmd {
	return l.load(l.page)
}

func (l *ListScreen) OnResume() tea.Cmd {
	return l.load(l.page)
}

func (l *ListScreen) Title() string {
	return "My Quizzes"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	if l.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Take"},
		{Key: "←→", Description: "Page"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *ListScreen) load(page int) tea.Cmd {
	l.loading = true
	svc, profile := l.svc, l.profile
	return func() tea.Msg {
		packs, total, err := svc.ListQuizzes(context.Background(), profile,
			store.Page{Number: page, Size: store.DefaultPageSize})
		return pageMsg{page: page, packs: packs, total: total, err: err}
	}
}

func (l *ListScreen) pages() int {
	return store.TotalPages(l.total, store.DefaultPageSize)
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		l.loading = false
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			return l, nil
		}
		// A delete can empty the last page; step back to one that exists.
		if len(msg.packs) == 0 && msg.page > 1 {
			return l, l.load(msg.page - 1)
		}
		l.errMsg = ""
		l.page = msg.page
		l.packs = msg.packs
		l.total = msg.total
		l.selected = min(l.selected, max(len(l.packs)-1, 0))
		return l, nil

	case deletedMsg:
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			return l, nil
		}
		return l, l.load(l.page)

	case tea.KeyPressMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l *ListScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if l.loading {
		return l, nil
	}

	if l.confirmDelete {
		l.confirmDelete = false
		if msg.String() == "y" && len(l.packs) > 0 {
			return l, l.delete(l.packs[l.selected].PackID)
		}
		return l, nil
	}

	switch msg.String() {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(l.packs)-1 {
			l.selected++
		}
	case "right", "l", "n":
		if l.page < l.pages() {
			l.selected = 0
			return l, l.load(l.page + 1)
		}
	case "left", "h", "p":
		if l.page > 1 {
			l.selected = 0
			return l, l.load(l.page - 1)
		}
	case "d":
		if len(l.packs) > 0 {
			l.confirmDelete = true
		}
	case "enter":
		if len(l.packs) > 0 {
			next := attempt.New(l.svc, l.profile, l.packs[l.selected].PackID)
			return l, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return l, nil
}

func (l *ListScreen) delete(packID string) tea.Cmd {
	svc, profile := l.svc, l.profile
	return func() tea.Msg {
		return deletedMsg{err: svc.DeleteQuiz(context.Background(), profile, packID)}
	}
}

func (l *ListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	switch {
	case l.errMsg != "":
		b.WriteString(theme.ErrorText.Render(l.errMsg))
	case l.loading && l.packs == nil:
		b.WriteString(theme.Muted.Render("Loading…"))
	case len(l.packs) == 0:
		b.WriteString(theme.Muted.Render("No quizzes yet. Generate one from the home screen."))
	default:
		for i, p := range l.packs {
			b.WriteString(renderRow(p, i == l.selected, cw))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("Page %d of %d · %d quizzes", l.page, l.pages(), l.total)))
	}

	if l.confirmDelete && len(l.packs) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(fmt.Sprintf("Delete %q? (y/n)", l.packs[l.selected].Name)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}

func renderRow(p store.PackSummary, selected bool, cw int) string {
	meta := fmt.Sprintf("%d questions · %s", p.QuestionCount, p.CreatedAt.Local().Format("Jan 2 15:04"))
	name := p.Name
	if selected {
		return theme.Selected.Render("▸ "+name) + "\n  " + theme.Muted.Render(meta)
	}
	return lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render("  "+name) + "\n  " + theme.Muted.Render(meta)
}
