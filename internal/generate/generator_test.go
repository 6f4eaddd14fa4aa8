package generate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/learninghub/internal/llm"
	"github.com/abhisek/learninghub/internal/quiz"
)

const sourceText = "Paris is the capital of France. Water boils at 100 degrees Celsius at sea level."

func quizJSON() json.RawMessage {
	return json.RawMessage(`{
		"quiz_name": "French  Geography",
		"questions": [
			{
				"kind": "multiple_choice",
				"question": "What is the capital of France?",
				"options": ["A) Berlin", "B) Paris", "C) Rome", "D) Madrid"],
				"answer": "B"
			},
			{
				"kind": "true_false",
				"question": "Water boils at 100 degrees Celsius at sea level.",
				"options": [],
				"answer": "true"
			},
			{
				"kind": "short_answer",
				"question": "Which   river flows through Paris?",
				"options": [],
				"answer": "The Seine"
			}
		]
	}`)
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	gen := New(mock, DefaultConfig(), nil)

	got, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText, MaxQuestions: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "French Geography" {
		t.Errorf("Name = %q, want %q", got.Name, "French Geography")
	}
	if len(got.Questions) != 3 {
		t.Fatalf("len(Questions) = %d, want 3", len(got.Questions))
	}
	if got.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", got.Dropped)
	}

	mc := got.Questions[0]
	if mc.Answer != "B) Paris" {
		t.Errorf("mc answer = %q, want %q", mc.Answer, "B) Paris")
	}
	d, err := quiz.Decode(mc.Prompt)
	if err != nil {
		t.Fatalf("decode mc prompt: %v", err)
	}
	if !d.IsMultipleChoice() || d.Options[1] != "B) Paris" {
		t.Errorf("decoded mc = %+v", d)
	}

	tf := got.Questions[1]
	if tf.Answer != "True" {
		t.Errorf("tf answer = %q, want True", tf.Answer)
	}
	d, err = quiz.Decode(tf.Prompt)
	if err != nil {
		t.Fatalf("decode tf prompt: %v", err)
	}
	if d.IsMultipleChoice() {
		t.Errorf("tf prompt decoded as multiple choice")
	}

	sa := got.Questions[2]
	if sa.Text != "Which river flows through Paris?" {
		t.Errorf("short answer text = %q", sa.Text)
	}
}

func TestGenerateQuiz_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	gen := New(mock, DefaultConfig(), nil)

	if _, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText, MaxQuestions: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Errorf("expected quiz schema")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected one user message, got %+v", req.Messages)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "at most 7 questions") {
		t.Errorf("message missing question cap: %q", msg)
	}
	if !strings.Contains(msg, sourceText) {
		t.Errorf("message missing source text")
	}
}

func TestGenerateQuiz_CapsToConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxQuestions = 2
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	gen := New(mock, cfg, nil)

	got, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText, MaxQuestions: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Questions) != 2 {
		t.Errorf("len(Questions) = %d, want 2", len(got.Questions))
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "at most 2 questions") {
		t.Errorf("expected prompt capped at 2")
	}
}

func TestGenerateQuiz_DropsInvalid(t *testing.T) {
	raw := json.RawMessage(`{
		"quiz_name": "",
		"questions": [
			{"kind": "multiple_choice", "question": "Pick one", "options": ["a", "b", "c"], "answer": "a"},
			{"kind": "true_false", "question": "Sky is blue", "options": [], "answer": "maybe"},
			{"kind": "essay", "question": "Discuss", "options": [], "answer": "x"},
			{"kind": "short_answer", "question": "Bad|||||delimiter", "options": [], "answer": "x"},
			{"kind": "short_answer", "question": "2 + 2?", "options": [], "answer": "4"}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig(), nil)

	got, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("len(Questions) = %d, want 1", len(got.Questions))
	}
	if got.Dropped != 4 {
		t.Errorf("Dropped = %d, want 4", got.Dropped)
	}
	if got.Name != "Untitled Quiz" {
		t.Errorf("Name = %q, want Untitled Quiz", got.Name)
	}
}

func TestGenerateQuiz_NoneSurvive(t *testing.T) {
	raw := json.RawMessage(`{"quiz_name": "X", "questions": [
		{"kind": "true_false", "question": "Q", "options": [], "answer": "unsure"}
	]}`)
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: raw}), DefaultConfig(), nil)

	_, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText})
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestGenerateQuiz_EmptyText(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: "  \n\t"})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("err = %v, want ErrEmptyText", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called for empty text")
	}
}

func TestGenerateQuiz_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	gen := New(llm.NewMockProvider(llm.MockResponse{Err: boom}), DefaultConfig(), nil)

	_, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestGenerateQuiz_BadJSON(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"not an object"`)}), DefaultConfig(), nil)

	_, err := gen.GenerateQuiz(context.Background(), QuizInput{Text: sourceText})
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestGenerateFlashcards(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": [
		{"question": "Capital of   France?", "answer": "Paris"},
		{"question": "", "answer": "orphan"},
		{"question": "Boiling point of water at sea level?", "answer": "100 °C"},
		{"question": "Broken|||||card", "answer": "x"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig(), nil)

	cards, err := gen.GenerateFlashcards(context.Background(), FlashcardInput{Text: sourceText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("len(cards) = %d, want 2", len(cards))
	}
	if cards[0].Question != "Capital of France?" {
		t.Errorf("cards[0].Question = %q", cards[0].Question)
	}
	if mock.Calls[0].Schema != FlashcardSchema {
		t.Errorf("expected flashcard schema")
	}
	if !strings.Contains(mock.Calls[0].System, conciseRule) {
		t.Errorf("expected concise rule in system prompt")
	}
}

func TestGenerateFlashcards_Detailed(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": [{"question": "Q", "answer": "A"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig(), nil)

	if _, err := gen.GenerateFlashcards(context.Background(), FlashcardInput{Text: sourceText, Detailed: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].System, detailedRule) {
		t.Errorf("expected detailed rule in system prompt")
	}
}

func TestGenerateFlashcards_Cap(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": [
		{"question": "Q1", "answer": "A1"},
		{"question": "Q2", "answer": "A2"},
		{"question": "Q3", "answer": "A3"}
	]}`)
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: raw}), DefaultConfig(), nil)

	cards, err := gen.GenerateFlashcards(context.Background(), FlashcardInput{Text: sourceText, MaxCards: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("len(cards) = %d, want 2", len(cards))
	}
}

func TestGenerateFlashcards_None(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": []}`)
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: raw}), DefaultConfig(), nil)

	_, err := gen.GenerateFlashcards(context.Background(), FlashcardInput{Text: sourceText})
	if !errors.Is(err, ErrNoFlashcards) {
		t.Errorf("err = %v, want ErrNoFlashcards", err)
	}
}

func TestCapCount(t *testing.T) {
	tests := []struct {
		requested, ceiling, want int
	}{
		{0, 15, 15},
		{-3, 15, 15},
		{5, 15, 5},
		{20, 15, 15},
		{15, 15, 15},
	}
	for _, tt := range tests {
		if got := capCount(tt.requested, tt.ceiling); got != tt.want {
			t.Errorf("capCount(%d, %d) = %d, want %d", tt.requested, tt.ceiling, got, tt.want)
		}
	}
}

func TestTruncateSource(t *testing.T) {
	if got := truncateSource("héllo", 2); got != "hé" {
		t.Errorf("truncateSource = %q, want %q", got, "hé")
	}
	if got := truncateSource("abc", 0); got != "abc" {
		t.Errorf("truncateSource with no cap = %q", got)
	}
}
