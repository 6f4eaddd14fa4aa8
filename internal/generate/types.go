package generate

import (
	"context"
	"errors"
)

var (
	// ErrNoQuestions is returned when no generated question survived validation.
	ErrNoQuestions = errors.New("no usable questions generated")

	// ErrNoFlashcards is returned when no generated flashcard survived cleanup.
	ErrNoFlashcards = errors.New("no usable flashcards generated")

	// ErrEmptyText is returned for blank source text.
	ErrEmptyText = errors.New("source text is empty")
)

// Kind is the answer style of a generated question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueFalse      Kind = "true_false"
	KindShortAnswer    Kind = "short_answer"
)

// Question is a validated question ready to be stored.
type Question struct {
	Kind    Kind
	Text    string
	Options []string
	Answer  string

	// Prompt is the delimiter-encoded form read by the quiz codec.
	Prompt string
}

// Quiz is a generated quiz.
type Quiz struct {
	Name      string
	Questions []Question

	// Dropped counts items rejected by validation.
	Dropped int
}

// Flashcard is a generated question/answer pair.
type Flashcard struct {
	Question string
	Answer   string
}

// QuizInput is the request for a quiz.
type QuizInput struct {
	Text string

	// MaxQuestions caps the quiz size. Zero means the configured default.
	MaxQuestions int
}

// FlashcardInput is the request for a flashcard set.
type FlashcardInput struct {
	Text string

	// Detailed asks for richer answers.
	Detailed bool

	// MaxCards caps the set size. Zero means the configured default.
	MaxCards int
}

// QuizGenerator produces quizzes from source text.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, input QuizInput) (*Quiz, error)
}

// FlashcardGenerator produces flashcards from source text.
type FlashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, input FlashcardInput) ([]Flashcard, error)
}
