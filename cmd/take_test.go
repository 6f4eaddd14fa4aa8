package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/learninghub/internal/quiz"
)

func takeRecords() []quiz.Record {
	return []quiz.Record{
		{PromptRaw: quiz.Encode("Capital of France?", "Rome", "Paris", "Oslo", "Lima"), CorrectAnswer: "Paris", QuizName: "Capitals"},
		{PromptRaw: quiz.Encode("The Nile is in Asia.", "False"), CorrectAnswer: "False", QuizName: "Capitals"},
		{PromptRaw: quiz.Encode("Capital of Peru?", "Quito", "Lima", "Bogota", "La Paz"), CorrectAnswer: "Lima", QuizName: "Capitals"},
	}
}

func TestRunQuiz_LettersAndText(t *testing.T) {
	var out bytes.Buffer
	sum := runQuiz(strings.NewReader("b\nfalse\nQuito\n"), &out, takeRecords())

	assert.Equal(t, 3, sum.Answered)
	assert.Equal(t, 2, sum.Score)
	assert.Equal(t, "Paris", sum.Entries[0].UserAnswer)
	assert.Equal(t, "false", sum.Entries[1].UserAnswer)
	assert.True(t, sum.Entries[1].IsCorrect)
	assert.Contains(t, out.String(), "B) Paris")
	assert.Contains(t, out.String(), "Answer: Lima")
}

func TestRunQuiz_InputClosedEarly(t *testing.T) {
	var out bytes.Buffer
	sum := runQuiz(strings.NewReader("Paris\n"), &out, takeRecords())

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Answered)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestRunQuiz_Empty(t *testing.T) {
	var out bytes.Buffer
	sum := runQuiz(strings.NewReader(""), &out, nil)

	assert.Equal(t, 0, sum.Total)
	assert.Contains(t, out.String(), "no questions")
}

func TestRunQuiz_WhitespaceIsKept(t *testing.T) {
	var out bytes.Buffer
	sum := runQuiz(strings.NewReader(" Paris\r\n"), &out, takeRecords()[:1])

	assert.Equal(t, " Paris", sum.Entries[0].UserAnswer)
	assert.False(t, sum.Entries[0].IsCorrect)
}

func TestResolveLetter(t *testing.T) {
	opts := []string{"Rome", "Paris", "Oslo", "Lima"}
	tests := []struct {
		in, want string
	}{
		{"a", "Rome"},
		{"D", "Lima"},
		{"e", "e"},
		{"Paris", "Paris"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resolveLetter(tt.in, opts); got != tt.want {
			t.Errorf("resolveLetter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
