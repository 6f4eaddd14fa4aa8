package quiz

import (
	"errors"
	"testing"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := NewSession()
	qs := append(mathGeo(), Record{PromptRaw: "broken|||||a|||||b", CorrectAnswer: "a", QuizName: "Math"})
	s.Start(qs)
	s.SubmitAnswer("B) 4")
	s.SubmitAnswer("A) Rome")
	s.SubmitAnswer("a")

	sum := Summarize(s.State())
	if sum.QuizName != "Math" {
		t.Errorf("QuizName = %q, want %q", sum.QuizName, "Math")
	}
	if sum.Total != 3 || sum.Answered != 3 {
		t.Errorf("Total/Answered = %d/%d, want 3/3", sum.Total, sum.Answered)
	}
	if sum.Score != 2 || sum.Percent != 67 {
		t.Errorf("Score/Percent = %d/%d, want 2/67", sum.Score, sum.Percent)
	}
	if len(sum.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(sum.Entries))
	}

	geo := sum.Entries[1]
	if geo.Question.Text != "Capital of France?" {
		t.Errorf("Entries[1].Question.Text = %q", geo.Question.Text)
	}
	if geo.UserAnswer != "A) Rome" || geo.IsCorrect {
		t.Errorf("Entries[1] = %+v, want incorrect A) Rome", geo)
	}
	if !errors.Is(sum.Entries[2].DecodeErr, ErrMalformed) {
		t.Errorf("Entries[2].DecodeErr = %v, want ErrMalformed", sum.Entries[2].DecodeErr)
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(NewSession().State())
	if sum.Total != 0 || sum.Percent != 0 || len(sum.Entries) != 0 {
		t.Errorf("Summarize(empty) = %+v", sum)
	}
}
