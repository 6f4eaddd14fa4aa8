// Package attempt is the screen that runs one quiz attempt.
package attempt

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/quiz"
	"github.com/abhisek/learninghub/internal/router"
	"github.com/abhisek/learninghub/internal/screen"
	"github.com/abhisek/learninghub/internal/screens/summary"
	"github.com/abhisek/learninghub/internal/ui/components"
	"github.com/abhisek/learninghub/internal/ui/layout"
)

var trueFalse = []string{"True", "False"}

type loadedMsg struct {
	records []quiz.Record
	err     error
}

// inputMode is how the current question is answered.
type inputMode int

const (
	modeChoice inputMode = iota // option grid or True/False
	modeText                    // free text
)

// AttemptScreen owns a quiz.Session for the lifetime of the screen.
type AttemptScreen struct {
	svc     *library.Service
	profile string
	packID  string
	session *quiz.Session

	loaded bool
	errMsg string

	// Current question, decoded once when it is shown.
	question  quiz.Decoded
	decodeErr error
	mode      inputMode
	choice    components.MultiChoice
	input     components.TextInput

	// feedback is the last judged answer while it is on screen.
	feedback *quiz.AnswerRecord
}

var (
	_ screen.Screen          = (*AttemptScreen)(nil)
	_ screen.KeyHintProvider = (*AttemptScreen)(nil)
	_ screen.Leaver          = (*AttemptScreen)(nil)
	_ screen.InputCapturer   = (*AttemptScreen)(nil)
)

// New creates an AttemptScreen for the pack.
func New(svc *library.Service, profile, packID string) *AttemptScreen {
	return &AttemptScreen{
		svc:     svc,
		profile: profile,
		packID:  packID,
		session: quiz.NewSession(),
	}
}

func (a *AttemptScreen) Init() tea.Cmd {
	svc, profile, packID := a.svc, a.profile, a.packID
	return func() tea.Msg {
		records, err := svc.LoadQuiz(context.Background(), profile, packID)
		return loadedMsg{records: records, err: err}
	}
}

func (a *AttemptScreen) Title() string {
	if cur, ok := a.session.Current(); ok && cur.QuizName != "" {
		return cur.QuizName
	}
	return "Quiz"
}

// OnLeave discards the attempt.
func (a *AttemptScreen) OnLeave() {
	a.session.Reset()
}

func (a *AttemptScreen) CapturingInput() bool {
	return a.loaded && a.feedback == nil && a.mode == modeText
}

func (a *AttemptScreen) KeyHints() []layout.KeyHint {
	switch {
	case !a.loaded || a.session.Phase() == quiz.PhaseEmpty:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case a.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case a.mode == modeChoice:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
}

func (a *AttemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		a.loaded = true
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.session.Start(msg.records)
		return a, a.prepare()

	case tea.KeyPressMsg:
		return a.handleKey(msg)
	}

	if a.CapturingInput() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *AttemptScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if !a.loaded || a.errMsg != "" || a.session.Phase() == quiz.PhaseEmpty {
		return a, nil
	}

	if a.feedback != nil {
		a.feedback = nil
		if a.session.IsOver() {
			sum := quiz.Summarize(a.session.State())
			return a, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(sum)}
			}
		}
		return a, a.prepare()
	}

	if a.mode == modeChoice {
		var submitted bool
		a.choice, submitted = a.choice.Update(msg)
		if submitted {
			a.submit(a.choice.Choice())
		}
		return a, nil
	}

	if msg.String() == "enter" {
		a.submit(a.input.Value())
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// prepare decodes the current question and sets up its input.
func (a *AttemptScreen) prepare() tea.Cmd {
	rec, ok := a.session.Current()
	if !ok {
		return nil
	}

	a.question, a.decodeErr = quiz.Decode(rec.PromptRaw)
	switch {
	case a.decodeErr == nil && a.question.IsMultipleChoice():
		a.mode = modeChoice
		a.choice = components.NewMultiChoice(a.question.Options)
	case a.decodeErr == nil && isTrueFalse(rec.CorrectAnswer):
		a.mode = modeChoice
		a.choice = components.NewMultiChoice(trueFalse)
	default:
		a.mode = modeText
		a.input = components.NewTextInput("Type your answer…", 200)
		return a.input.Init()
	}
	return nil
}

func isTrueFalse(answer string) bool {
	a := strings.ToLower(answer)
	return a == "true" || a == "false"
}

// submit hands the answer to the session exactly as entered.
func (a *AttemptScreen) submit(answer string) {
	rec, ok := a.session.SubmitAnswer(answer)
	if !ok {
		return
	}
	if a.mode == modeChoice {
		a.choice.Reveal(rec.CorrectAnswer)
	} else {
		a.input.Submit(rec.IsCorrect)
	}
	a.feedback = &rec
}
