package generate

import (
	"fmt"
	"strings"

	"github.com/abhisek/learninghub/internal/quiz"
)

// Validator checks a generated question before it is stored.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages and logs.
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

const maxQuestionLen = 500

// StructuralValidator checks required fields, lengths, and that no field
// can break the encoded prompt.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	switch q.Kind {
	case KindMultipleChoice, KindTrueFalse, KindShortAnswer:
	default:
		return fail(fmt.Sprintf("unknown kind %q", q.Kind))
	}
	if q.Text == "" {
		return fail("question is empty")
	}
	if len(q.Text) > maxQuestionLen {
		return fail(fmt.Sprintf("question exceeds %d characters", maxQuestionLen))
	}
	if q.Answer == "" {
		return fail("answer is empty")
	}

	fields := append([]string{q.Text, q.Answer}, q.Options...)
	for _, f := range fields {
		if strings.Contains(f, quiz.Delimiter) {
			return fail("field contains the prompt delimiter")
		}
	}
	return nil
}

// ChoiceValidator checks option grids: multiple-choice questions carry
// exactly four distinct options, one of which is the answer, and other
// kinds carry none.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choice" }

func (v *ChoiceValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	if q.Kind != KindMultipleChoice {
		if len(q.Options) != 0 {
			return fail(fmt.Sprintf("%s question has options", q.Kind))
		}
		return nil
	}

	if len(q.Options) != quiz.OptionCount {
		return fail(fmt.Sprintf("multiple choice needs %d options, got %d", quiz.OptionCount, len(q.Options)))
	}
	seen := make(map[string]bool, len(q.Options))
	matched := false
	for _, o := range q.Options {
		if o == "" {
			return fail("empty option")
		}
		key := strings.ToLower(o)
		if seen[key] {
			return fail(fmt.Sprintf("duplicate option %q", o))
		}
		seen[key] = true
		if strings.EqualFold(o, q.Answer) {
			matched = true
		}
	}
	if !matched {
		return fail(fmt.Sprintf("answer %q is not one of the options", q.Answer))
	}
	return nil
}

// TrueFalseValidator checks that true/false answers are exactly "True" or
// "False".
type TrueFalseValidator struct{}

func (v *TrueFalseValidator) Name() string { return "true-false" }

func (v *TrueFalseValidator) Validate(q *Question) *ValidationError {
	if q.Kind != KindTrueFalse {
		return nil
	}
	if q.Answer != "True" && q.Answer != "False" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer must be True or False, got %q", q.Answer),
		}
	}
	return nil
}
