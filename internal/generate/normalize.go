package generate

import (
	"regexp"
	"strings"

	"github.com/abhisek/learninghub/internal/quiz"
)

var multiSpace = regexp.MustCompile(`\s\s+`)

// collapseSpaces trims s and replaces every run of two or more whitespace
// characters with a single space.
func collapseSpaces(s string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// normalizeQuestion tidies model output before validation. It never
// rejects anything; validators do that.
func normalizeQuestion(q *Question) {
	q.Kind = Kind(strings.ToLower(strings.TrimSpace(string(q.Kind))))
	q.Text = collapseSpaces(q.Text)
	q.Answer = collapseSpaces(q.Answer)
	for i, o := range q.Options {
		q.Options[i] = collapseSpaces(o)
	}

	switch q.Kind {
	case KindTrueFalse:
		switch strings.ToLower(q.Answer) {
		case "true", "t":
			q.Answer = "True"
		case "false", "f":
			q.Answer = "False"
		}
		q.Options = nil
	case KindMultipleChoice:
		q.Answer = alignAnswer(q.Answer, q.Options)
	}
}

// alignAnswer returns the option the answer refers to, so stored answers
// always match an option's text. An answer may be the option text in any
// case, or just its letter ("B", "B)").
func alignAnswer(answer string, options []string) string {
	for _, o := range options {
		if strings.EqualFold(o, answer) {
			return o
		}
	}

	letter := strings.TrimSuffix(strings.ToUpper(answer), ")")
	if len(letter) == 1 {
		for _, o := range options {
			if strings.HasPrefix(strings.ToUpper(o), letter+")") {
				return o
			}
		}
	}
	return answer
}

// encodePrompt builds the stored prompt. Multiple-choice questions carry
// their options; every other kind is stored as question and answer so the
// prompt still decodes into two segments.
func encodePrompt(q Question) string {
	if q.Kind == KindMultipleChoice {
		return quiz.Encode(q.Text, q.Options...)
	}
	return quiz.Encode(q.Text, q.Answer)
}
