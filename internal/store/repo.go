package store

import (
	"context"
	"time"
)

// DefaultPageSize is the number of quizzes shown per page.
const DefaultPageSize = 5

// Page selects a 1-based page of results.
type Page struct {
	Number int
	Size   int
}

// normalize clamps the page to usable values.
func (p Page) normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	p = p.normalize()
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of size hold total rows. An empty result
// still has one page.
func TotalPages(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// QuizQuestion is one stored question row. Question holds the encoded
// prompt and Answer the correct option text.
type QuizQuestion struct {
	ID        int
	UserID    string
	PackID    string
	QuizName  string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// PackSummary describes a quiz pack in a listing.
type PackSummary struct {
	PackID        string
	Name          string
	QuestionCount int
	CreatedAt     time.Time
}

// QuizPack is a full quiz with its questions in insertion order.
type QuizPack struct {
	PackSummary
	Questions []QuizQuestion
}

// NewQuestion is a question to be saved as part of a pack.
type NewQuestion struct {
	Question string
	Answer   string
}

// QuizRepo manages quiz packs. Every method is scoped to a profile.
type QuizRepo interface {
	SavePack(ctx context.Context, userID, packID, name string, questions []NewQuestion) error
	ListPacks(ctx context.Context, userID string, page Page) ([]PackSummary, int, error)
	GetPack(ctx context.Context, userID, packID string) (*QuizPack, error)
	RenamePack(ctx context.Context, userID, packID, name string) error
	DeletePack(ctx context.Context, userID, packID string) error
	DeleteAll(ctx context.Context, userID string) (int, error)
}

// Flashcard is one stored flashcard.
type Flashcard struct {
	ID        int
	UserID    string
	PackID    string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// NewFlashcard is a flashcard to be saved.
type NewFlashcard struct {
	Question string
	Answer   string
}

// FlashcardRepo manages flashcards. Every method is scoped to a profile.
type FlashcardRepo interface {
	SaveCards(ctx context.Context, userID, packID string, cards []NewFlashcard) error
	List(ctx context.Context, userID string, page Page) ([]Flashcard, int, error)
	Delete(ctx context.Context, userID string, id int) error
	DeleteAll(ctx context.Context, userID string) (int, error)
}

// Limits holds generation allowances for a profile.
type Limits struct {
	QuizLimit      int
	FlashcardLimit int
}

// Usage is a profile's allowances together with what has been used.
type Usage struct {
	UserID         string
	QuizLimit      int
	QuizCount      int
	FlashcardLimit int
	FlashcardCount int
	UpdatedAt      time.Time
}

// QuizzesRemaining returns how many more quizzes may be generated.
func (u Usage) QuizzesRemaining() int {
	return max(0, u.QuizLimit-u.QuizCount)
}

// FlashcardsRemaining returns how many more flashcards may be generated.
func (u Usage) FlashcardsRemaining() int {
	return max(0, u.FlashcardLimit-u.FlashcardCount)
}

// LimitRepo tracks generation allowances per profile.
type LimitRepo interface {
	// Get returns the profile's usage, creating it with defaults on first use.
	Get(ctx context.Context, userID string, defaults Limits) (*Usage, error)
	SetLimits(ctx context.Context, userID string, limits Limits) error
	IncrementQuizzes(ctx context.Context, userID string, n int) error
	AddFlashcards(ctx context.Context, userID string, n int) error
	ResetUsage(ctx context.Context, userID string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact purpose match when set
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns nil when the event does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
