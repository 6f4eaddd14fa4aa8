// Package compose is the screen that turns source text into a new quiz or
// flashcard batch.
package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/router"
	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/screens/attempt"
	"github.com/abhisek/learninghub/internal/screens/flashcards"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/layout"
	"github.com/abhisek/learninghub/internal/ui/theme"
)

// Kind selects what the screen generates.
type Kind int

const (
	KindQuiz Kind = iota
	KindFlashcards
)

func (k Kind) String() string {
	if k == KindFlashcards {
		return "flashcards"
	}
	return "quiz"
}

type generatedMsg struct {
	quiz  *library.QuizResult
	cards *library.FlashcardResult
	err   error
}

// ComposeScreen reads a file path or pasted text and runs generation.
type ComposeScreen struct {
	svc      *library.Service
	profile  string
	kind     Kind
	input    components.TextInput
	detailed bool
	busy     bool
	errMsg   string
}

var (
	_ screen.Screen          = (*ComposeScreen)(nil)
	_ screen.KeyHintProvider = (*ComposeScreen)(nil)
	_ screen.InputCapturer   = (*ComposeScreen)(nil)
)

// New creates a ComposeScreen for kind.
func New(svc *library.Service, profile string, kind Kind) *ComposeScreen {
	return &ComposeScreen{
		svc:     svc,
		profile: profile,
		kind:    kind,
		input:   components.NewTextInput("path/to/notes.txt or paste text", 0),
	}
}

func (c *ComposeScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ComposeScreen) Title() string {
	if c.kind == KindFlashcards {
		return "New Flashcards"
	}
	return "New Quiz"
}

func (c *ComposeScreen) CapturingInput() bool {
	return !c.busy
}

func (c *ComposeScreen) KeyHints() []layout.KeyHint {
	if c.busy {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Generate"}}
	if c.kind == KindFlashcards {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Detailed on/off"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (c *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return c.handleGenerated(msg)

	case tea.KeyPressMsg:
		if c.busy {
			return c, nil
		}
		switch msg.String() {
		case "enter":
			return c, c.submit()
		case "tab":
			if c.kind == KindFlashcards {
				c.detailed = !c.detailed
			}
			return c, nil
		}
	}

	if c.busy {
		return c, nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ComposeScreen) submit() tea.Cmd {
	value := strings.TrimSpace(c.input.Value())
	if value == "" {
		c.errMsg = "Enter a file path or some text first."
		return nil
	}
	text, err := resolveSource(value)
	if err != nil {
		c.errMsg = err.Error()
		return nil
	}

	c.busy = true
	c.errMsg = ""
	svc, profile, kind, detailed := c.svc, c.profile, c.kind, c.detailed
	return func() tea.Msg {
		ctx := context.Background()
		if kind == KindFlashcards {
			res, err := svc.GenerateFlashcards(ctx, profile, text, detailed)
			return generatedMsg{cards: res, err: err}
		}
		res, err := svc.GenerateQuiz(ctx, profile, text)
		return generatedMsg{quiz: res, err: err}
	}
}

// resolveSource reads value as a file when it names one, otherwise treats
// it as the source text itself.
func resolveSource(value string) (string, error) {
	info, err := os.Stat(value)
	if err != nil || info.IsDir() {
		return value, nil
	}
	data, err := os.ReadFile(value)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", value, err)
	}
	return string(data), nil
}

func (c *ComposeScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	c.busy = false
	if msg.err != nil {
		c.errMsg = describe(msg.err, c.kind)
		return c, nil
	}

	var next screen.Screen
	switch {
	case msg.quiz != nil:
		next = attempt.New(c.svc, c.profile, msg.quiz.PackID)
	case msg.cards != nil:
		next = flashcards.New(c.svc, c.profile)
	default:
		return c, nil
	}
	return c, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func describe(err error, kind Kind) string {
	switch {
	case errors.Is(err, library.ErrLimitReached):
		return fmt.Sprintf("You have used your %s allowance for this profile.", kind)
	case errors.Is(err, library.ErrEmptyInput):
		return "The source text is empty."
	default:
		return "Generation failed: " + err.Error()
	}
}

func (c *ComposeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(strings.ToUpper(c.Title())))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Source file or text:"))
	b.WriteString("\n")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")

	if c.kind == KindFlashcards {
		mark := "[ ]"
		if c.detailed {
			mark = "[x]"
		}
		b.WriteString(theme.Muted.Render(mark + " detailed answers"))
		b.WriteString("\n\n")
	}

	switch {
	case c.busy:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Info).Render(fmt.Sprintf("Generating %s…", c.kind)))
	case c.errMsg != "":
		b.WriteString(theme.ErrorText.Render(c.errMsg))
	default:
		b.WriteString(theme.Hint.Render("Press Enter to generate."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}
