// Package library ties generation, allowances and storage together for one
// profile. Every surface (CLI, TUI, HTTP) goes through a Service.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/learninghub/internal/generate"
	"github.com/abhisek/learninghub/internal/quiz"
	"github.com/abhisek/learninghub/internal/store"
)

var (
	// ErrLimitReached is returned when a profile has used its allowance.
	ErrLimitReached = errors.New("generation limit reached")

	// ErrEmptyInput is returned for blank source text or names.
	ErrEmptyInput = errors.New("input is empty")

	// ErrUnavailable is returned by generation when no generator is set.
	ErrUnavailable = errors.New("generation is not configured")
)

// Generator produces quizzes and flashcards. A Service built with a nil
// Generator still serves everything except generation.
type Generator interface {
	generate.QuizGenerator
	generate.FlashcardGenerator
}

// Config bounds generation.
type Config struct {
	// Defaults are the allowances given to a profile on first use.
	Defaults store.Limits

	// MaxQuestions caps a single quiz.
	MaxQuestions int

	// MaxFlashcards caps a single flashcard batch.
	MaxFlashcards int
}

// Service is the application layer over the store and generator.
type Service struct {
	store *store.Store
	gen   Generator
	cfg   Config
	log   *zap.Logger
}

// NewService creates a library service.
func NewService(st *store.Store, gen Generator, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, gen: gen, cfg: cfg, log: log}
}

// QuizResult describes a newly generated and saved quiz.
type QuizResult struct {
	PackID    string
	Name      string
	Questions int
	Dropped   int
}

// FlashcardResult describes a newly generated and saved flashcard batch.
type FlashcardResult struct {
	PackID string
	Cards  []generate.Flashcard
}

// GenerateQuiz generates a quiz from text, saves it, and counts it against
// the profile's quiz allowance.
func (s *Service) GenerateQuiz(ctx context.Context, userID, text string) (*QuizResult, error) {
	if s.gen == nil {
		return nil, ErrUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	usage, err := s.Usage(ctx, userID)
	if err != nil {
		return nil, err
	}
	remaining := usage.QuizzesRemaining()
	if remaining <= 0 {
		return nil, fmt.Errorf("%w: %d of %d quizzes used", ErrLimitReached, usage.QuizCount, usage.QuizLimit)
	}

	// A quiz never asks for more questions than the allowance has left.
	generated, err := s.gen.GenerateQuiz(ctx, generate.QuizInput{
		Text:         text,
		MaxQuestions: min(s.cfg.MaxQuestions, remaining),
	})
	if err != nil {
		return nil, translate(err)
	}

	packID := "quiz-" + uuid.NewString()
	rows := make([]store.NewQuestion, len(generated.Questions))
	for i, q := range generated.Questions {
		rows[i] = store.NewQuestion{Question: q.Prompt, Answer: q.Answer}
	}
	if err := s.store.QuizRepo().SavePack(ctx, userID, packID, generated.Name, rows); err != nil {
		return nil, fmt.Errorf("save quiz: %w", err)
	}

	if err := s.store.LimitRepo().IncrementQuizzes(ctx, userID, 1); err != nil {
		s.log.Warn("failed to count quiz against limit",
			zap.String("user", userID), zap.String("pack_id", packID), zap.Error(err))
	}

	s.log.Info("quiz generated",
		zap.String("user", userID),
		zap.String("pack_id", packID),
		zap.Int("questions", len(rows)),
		zap.Int("dropped", generated.Dropped))

	return &QuizResult{
		PackID:    packID,
		Name:      generated.Name,
		Questions: len(rows),
		Dropped:   generated.Dropped,
	}, nil
}

// GenerateFlashcards generates flashcards from text, saves them, and adds
// the saved count to the profile's flashcard usage.
func (s *Service) GenerateFlashcards(ctx context.Context, userID, text string, detailed bool) (*FlashcardResult, error) {
	if s.gen == nil {
		return nil, ErrUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	usage, err := s.Usage(ctx, userID)
	if err != nil {
		return nil, err
	}
	remaining := usage.FlashcardsRemaining()
	if remaining <= 0 {
		return nil, fmt.Errorf("%w: %d of %d flashcards used", ErrLimitReached, usage.FlashcardCount, usage.FlashcardLimit)
	}

	cards, err := s.gen.GenerateFlashcards(ctx, generate.FlashcardInput{
		Text:     text,
		Detailed: detailed,
		MaxCards: min(s.cfg.MaxFlashcards, remaining),
	})
	if err != nil {
		return nil, translate(err)
	}

	packID := "fc-" + uuid.NewString()
	rows := make([]store.NewFlashcard, len(cards))
	for i, c := range cards {
		rows[i] = store.NewFlashcard{Question: c.Question, Answer: c.Answer}
	}
	if err := s.store.FlashcardRepo().SaveCards(ctx, userID, packID, rows); err != nil {
		return nil, fmt.Errorf("save flashcards: %w", err)
	}

	if err := s.store.LimitRepo().AddFlashcards(ctx, userID, len(rows)); err != nil {
		s.log.Warn("failed to count flashcards against limit",
			zap.String("user", userID), zap.Int("cards", len(rows)), zap.Error(err))
	}

	s.log.Info("flashcards generated",
		zap.String("user", userID),
		zap.String("pack_id", packID),
		zap.Int("cards", len(rows)))

	return &FlashcardResult{PackID: packID, Cards: cards}, nil
}

// translate maps generator errors onto the service's sentinels.
func translate(err error) error {
	if errors.Is(err, generate.ErrEmptyText) {
		return ErrEmptyInput
	}
	return err
}

// ListQuizzes returns one page of the profile's quizzes, newest first, and
// the total number of quizzes.
func (s *Service) ListQuizzes(ctx context.Context, userID string, page store.Page) ([]store.PackSummary, int, error) {
	return s.store.QuizRepo().ListPacks(ctx, userID, page)
}

// GetQuiz returns a quiz with its questions.
func (s *Service) GetQuiz(ctx context.Context, userID, packID string) (*store.QuizPack, error) {
	return s.store.QuizRepo().GetPack(ctx, userID, packID)
}

// LoadQuiz returns the question records a quiz session is started with.
func (s *Service) LoadQuiz(ctx context.Context, userID, packID string) ([]quiz.Record, error) {
	pack, err := s.GetQuiz(ctx, userID, packID)
	if err != nil {
		return nil, err
	}
	records := make([]quiz.Record, len(pack.Questions))
	for i, q := range pack.Questions {
		records[i] = quiz.Record{
			PromptRaw:     q.Question,
			CorrectAnswer: q.Answer,
			QuizName:      q.QuizName,
		}
	}
	return records, nil
}

// RenameQuiz changes a quiz's display name.
func (s *Service) RenameQuiz(ctx context.Context, userID, packID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyInput
	}
	return s.store.QuizRepo().RenamePack(ctx, userID, packID, name)
}

// DeleteQuiz removes a quiz. Deleting does not refund the allowance.
func (s *Service) DeleteQuiz(ctx context.Context, userID, packID string) error {
	return s.store.QuizRepo().DeletePack(ctx, userID, packID)
}

// ListFlashcards returns one page of the profile's flashcards, newest first.
func (s *Service) ListFlashcards(ctx context.Context, userID string, page store.Page) ([]store.Flashcard, int, error) {
	return s.store.FlashcardRepo().List(ctx, userID, page)
}

// DeleteFlashcard removes a single flashcard.
func (s *Service) DeleteFlashcard(ctx context.Context, userID string, id int) error {
	return s.store.FlashcardRepo().Delete(ctx, userID, id)
}

// Usage returns the profile's allowances, creating them on first use.
func (s *Service) Usage(ctx context.Context, userID string) (*store.Usage, error) {
	usage, err := s.store.LimitRepo().Get(ctx, userID, s.cfg.Defaults)
	if err != nil {
		return nil, fmt.Errorf("load limits: %w", err)
	}
	return usage, nil
}

// SetLimits changes the profile's allowances.
func (s *Service) SetLimits(ctx context.Context, userID string, limits store.Limits) error {
	if limits.QuizLimit <= 0 || limits.FlashcardLimit <= 0 {
		return fmt.Errorf("limits must be positive")
	}
	if _, err := s.Usage(ctx, userID); err != nil {
		return err
	}
	return s.store.LimitRepo().SetLimits(ctx, userID, limits)
}

// ResetUsage zeroes the profile's usage counters.
func (s *Service) ResetUsage(ctx context.Context, userID string) error {
	if _, err := s.Usage(ctx, userID); err != nil {
		return err
	}
	return s.store.LimitRepo().ResetUsage(ctx, userID)
}

// ResetProfile deletes every quiz and flashcard of the profile and zeroes
// its usage.
func (s *Service) ResetProfile(ctx context.Context, userID string) (quizRows, flashcards int, err error) {
	quizRows, flashcards, err = s.store.ResetProfile(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	s.log.Info("profile reset",
		zap.String("user", userID), zap.Int("quiz_rows", quizRows), zap.Int("flashcards", flashcards))
	return quizRows, flashcards, nil
}

// Ping checks that the database is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.DB().PingContext(ctx)
}
