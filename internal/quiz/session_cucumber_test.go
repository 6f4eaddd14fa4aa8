package quiz

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

// TestSessionFeatures runs the quiz session scenarios through godog.
func TestSessionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: initializeSessionScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("features", "quiz_session.feature")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

type sessionScenario struct {
	questions []Record
	session   *Session
}

func initializeSessionScenario(ctx *godog.ScenarioContext) {
	sc := &sessionScenario{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.questions = nil
		sc.session = NewSession()
		return ctx, nil
	})

	ctx.Step(`^a quiz with the questions:$`, sc.givenQuestions)
	ctx.Step(`^I start the quiz$`, sc.startQuiz)
	ctx.Step(`^I answer "([^"]*)"$`, sc.answer)
	ctx.Step(`^I reset the quiz$`, sc.reset)
	ctx.Step(`^the score is (\d+)$`, sc.scoreIs)
	ctx.Step(`^the current index is (\d+)$`, sc.currentIndexIs)
	ctx.Step(`^the quiz is over$`, sc.quizIsOver)
	ctx.Step(`^the quiz is not over$`, sc.quizIsNotOver)
	ctx.Step(`^the answer log has (\d+) entries$`, sc.answerLogHas)
	ctx.Step(`^answer (\d+) is (correct|incorrect)$`, sc.answerIs)
	ctx.Step(`^the session phase is "([^"]*)"$`, sc.phaseIs)
	ctx.Step(`^the current question reads "([^"]*)"$`, sc.currentQuestionReads)
	ctx.Step(`^the current question has (\d+) options$`, sc.currentQuestionHasOptions)
}

func (sc *sessionScenario) givenQuestions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("question table needs a header and at least one row")
	}
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 3 {
			return fmt.Errorf("expected 3 cells, got %d", len(row.Cells))
		}
		sc.questions = append(sc.questions, Record{
			PromptRaw:     row.Cells[0].Value,
			CorrectAnswer: row.Cells[1].Value,
			QuizName:      row.Cells[2].Value,
		})
	}
	return nil
}

func (sc *sessionScenario) startQuiz() error {
	sc.session.Start(sc.questions)
	return nil
}

func (sc *sessionScenario) answer(a string) error {
	sc.session.SubmitAnswer(a)
	return nil
}

func (sc *sessionScenario) reset() error {
	sc.session.Reset()
	return nil
}

func (sc *sessionScenario) scoreIs(want int) error {
	if got := sc.session.Score(); got != want {
		return fmt.Errorf("score = %d, want %d", got, want)
	}
	return nil
}

func (sc *sessionScenario) currentIndexIs(want int) error {
	if got := sc.session.CurrentIndex(); got != want {
		return fmt.Errorf("current index = %d, want %d", got, want)
	}
	return nil
}

func (sc *sessionScenario) quizIsOver() error {
	if !sc.session.IsOver() {
		return fmt.Errorf("expected quiz to be over")
	}
	return nil
}

func (sc *sessionScenario) quizIsNotOver() error {
	if sc.session.IsOver() {
		return fmt.Errorf("expected quiz to be in progress")
	}
	return nil
}

func (sc *sessionScenario) answerLogHas(want int) error {
	if got := len(sc.session.AnswerLog()); got != want {
		return fmt.Errorf("answer log has %d entries, want %d", got, want)
	}
	return nil
}

func (sc *sessionScenario) answerIs(n int, verdict string) error {
	log := sc.session.AnswerLog()
	if n < 1 || n > len(log) {
		return fmt.Errorf("answer %d out of range (log has %d)", n, len(log))
	}
	want := verdict == "correct"
	if log[n-1].IsCorrect != want {
		return fmt.Errorf("answer %d: IsCorrect = %v, want %v", n, log[n-1].IsCorrect, want)
	}
	return nil
}

func (sc *sessionScenario) phaseIs(want string) error {
	if got := sc.session.Phase().String(); got != want {
		return fmt.Errorf("phase = %q, want %q", got, want)
	}
	return nil
}

func (sc *sessionScenario) currentQuestionReads(want string) error {
	d, err := sc.decodeCurrent()
	if err != nil {
		return err
	}
	if d.Text != want {
		return fmt.Errorf("question text = %q, want %q", d.Text, want)
	}
	return nil
}

func (sc *sessionScenario) currentQuestionHasOptions(want int) error {
	d, err := sc.decodeCurrent()
	if err != nil {
		return err
	}
	if len(d.Options) != want {
		return fmt.Errorf("options = %d, want %d", len(d.Options), want)
	}
	return nil
}

func (sc *sessionScenario) decodeCurrent() (Decoded, error) {
	rec, ok := sc.session.Current()
	if !ok {
		return Decoded{}, fmt.Errorf("no current question")
	}
	return Decode(rec.PromptRaw)
}
