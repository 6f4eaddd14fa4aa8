// Package flashcards is the screen for reviewing saved flashcards one at a
// time.
package flashcards

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/store"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/layout"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

type cardMsg struct {
	index int
	card  *store.Flashcard
	total int
	err   error
}

type deletedMsg struct {
	err error
}

// FlashcardScreen pages through cards newest first. Each card is fetched as
// a page of size one.
type FlashcardScreen struct {
	svc     *library.Service
	profile string

	index   int
	total   int
	card    *store.Flashcard
	flipped bool
	loading bool
	errMsg  string
}

var (
	_ screen.Screen          = (*FlashcardScreen)(nil)
	_ screen.KeyHintProvider = (*FlashcardScreen)(nil)
)

// New creates a FlashcardScreen at the newest card.
func New(svc *library.Service, profile string) *FlashcardScreen {
	return &FlashcardScreen{svc: svc, profile: profile, loading: true}
}

func (f *FlashcardScreen) Init() tea.Cmd {
	return f.load(0)
}

func (f *FlashcardScreen) Title() string {
	return "My Flashcards"
}

func (f *FlashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FlashcardScreen) load(index int) tea.Cmd {
	f.loading = true
	svc, profile := f.svc, f.profile
	return func() tea.Msg {
		cards, total, err := svc.ListFlashcards(context.Background(), profile,
			store.Page{Number: index + 1, Size: 1})
		msg := cardMsg{index: index, total: total, err: err}
		if len(cards) > 0 {
			msg.card = &cards[0]
		}
		return msg
	}
}

func (f *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardMsg:
		f.loading = false
		if msg.err != nil {
			f.errMsg = msg.err.Error()
			return f, nil
		}
		if msg.card == nil && msg.index > 0 && msg.total > 0 {
			return f, f.load(msg.total - 1)
		}
		f.errMsg = ""
		f.index = msg.index
		f.total = msg.total
		f.card = msg.card
		f.flipped = false
		return f, nil

	case deletedMsg:
		if msg.err != nil {
			f.errMsg = msg.err.Error()
			return f, nil
		}
		return f, f.load(f.index)

	case tea.KeyPressMsg:
		if f.loading || f.card == nil {
			return f, nil
		}
		switch msg.String() {
		case "space", " ", "enter":
			f.flipped = !f.flipped
		case "right", "l", "n":
			if f.index < f.total-1 {
				return f, f.load(f.index + 1)
			}
		case "left", "h", "p":
			if f.index > 0 {
				return f, f.load(f.index - 1)
			}
		case "d":
			return f, f.delete(f.card.ID)
		}
	}
	return f, nil
}

func (f *FlashcardScreen) delete(id int) tea.Cmd {
	svc, profile := f.svc, f.profile
	return func() tea.Msg {
		return deletedMsg{err: svc.DeleteFlashcard(context.Background(), profile, id)}
	}
}

func (f *FlashcardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case f.errMsg != "":
		body = theme.ErrorText.Render(f.errMsg)
	case f.loading && f.card == nil:
		body = theme.Muted.Render("Loading…")
	case f.card == nil:
		body = theme.Muted.Render("No flashcards yet. Generate some from the home screen.")
	default:
		face, label := f.card.Question, "QUESTION"
		if f.flipped {
			face, label = f.card.Answer, "ANSWER"
		}
		var b strings.Builder
		b.WriteString(theme.Muted.Render(label))
		b.WriteString("\n\n")
		b.WriteString(components.FlipCard(theme.Body.Render(face), f.flipped, cw))
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("Card %d of %d", f.index+1, f.total)))
		body = b.String()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
