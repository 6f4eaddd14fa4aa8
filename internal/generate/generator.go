package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/learninghub/internal/llm"
	"github.com/abhisek/learninghub/internal/quiz"
)

// LLM purpose labels recorded with every request.
const (
	PurposeQuiz       = "quiz-gen"
	PurposeFlashcards = "flashcard-gen"
)

const defaultQuizName = "Untitled Quiz"

// LLMGenerator implements QuizGenerator and FlashcardGenerator on an LLM
// provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *LLMGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	QuizName  string `json:"quiz_name"`
	Questions []struct {
		Kind     string   `json:"kind"`
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Answer   string   `json:"answer"`
	} `json:"questions"`
}

type flashcardOutput struct {
	Flashcards []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"flashcards"`
}

// GenerateQuiz produces a quiz from input.Text. Questions that fail
// validation are dropped; ErrNoQuestions is returned when none survive.
func (g *LLMGenerator) GenerateQuiz(ctx context.Context, input QuizInput) (*Quiz, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	limit := capCount(input.MaxQuestions, g.config.MaxQuestions)

	ctx = llm.WithPurpose(ctx, PurposeQuiz)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(truncateSource(text, g.config.MaxSourceChars), limit)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := &Quiz{Name: collapseSpaces(raw.QuizName)}
	if out.Name == "" {
		out.Name = defaultQuizName
	}

	for _, item := range raw.Questions {
		if len(out.Questions) == limit {
			break
		}
		q := Question{
			Kind:    Kind(item.Kind),
			Text:    item.Question,
			Options: append([]string(nil), item.Options...),
			Answer:  item.Answer,
		}
		normalizeQuestion(&q)

		if verr := g.validate(&q); verr != nil {
			out.Dropped++
			g.log.Debug("dropped generated question", zap.String("question", q.Text), zap.Error(verr))
			continue
		}
		q.Prompt = encodePrompt(q)
		out.Questions = append(out.Questions, q)
	}

	if len(out.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

// GenerateFlashcards produces up to the requested number of flashcards from
// input.Text. Whitespace runs are collapsed; empty cards and cards that
// would corrupt the stored prompt are dropped.
func (g *LLMGenerator) GenerateFlashcards(ctx context.Context, input FlashcardInput) ([]Flashcard, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	limit := capCount(input.MaxCards, g.config.MaxFlashcards)

	ctx = llm.WithPurpose(ctx, PurposeFlashcards)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: flashcardSystem(input.Detailed),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFlashcardMessage(truncateSource(text, g.config.MaxSourceChars), limit)},
		},
		Schema:      FlashcardSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw flashcardOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	cards := make([]Flashcard, 0, len(raw.Flashcards))
	for _, c := range raw.Flashcards {
		if len(cards) == limit {
			break
		}
		card := Flashcard{Question: collapseSpaces(c.Question), Answer: collapseSpaces(c.Answer)}
		if card.Question == "" || card.Answer == "" {
			continue
		}
		if strings.Contains(card.Question, quiz.Delimiter) || strings.Contains(card.Answer, quiz.Delimiter) {
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, ErrNoFlashcards
	}
	return cards, nil
}

func (g *LLMGenerator) validate(q *Question) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

// capCount returns requested bounded by ceiling; a non-positive request
// means the ceiling itself.
func capCount(requested, ceiling int) int {
	if requested <= 0 || requested > ceiling {
		return ceiling
	}
	return requested
}
