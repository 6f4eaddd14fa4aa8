package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the question text from its options in an encoded prompt.
const Delimiter = "|||||"

// OptionCount is the number of options a multiple-choice prompt carries.
const OptionCount = 4

// ErrMalformed is matched by every decode failure.
var ErrMalformed = errors.New("invalid question format")

// DecodeError reports an encoded prompt whose segment count is not usable.
type DecodeError struct {
	Segments int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid question format: %d segment(s), want 2 or at least %d", e.Segments, OptionCount+1)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformed
}

// Decoded is the structured form of an encoded prompt.
type Decoded struct {
	Text string

	// Options holds exactly OptionCount entries for multiple-choice prompts
	// and is empty for true/false or short-answer prompts.
	Options []string
}

// IsMultipleChoice reports whether the prompt carries an option grid.
func (d Decoded) IsMultipleChoice() bool {
	return len(d.Options) > 0
}

// Decode splits raw on Delimiter.
//
// Five or more segments yield the text and the first four options; anything
// past the fourth option is ignored. Exactly two segments yield a prompt with
// no options. Every other shape is a *DecodeError.
func Decode(raw string) (Decoded, error) {
	segments := strings.Split(raw, Delimiter)
	switch n := len(segments); {
	case n >= OptionCount+1:
		opts := make([]string, OptionCount)
		copy(opts, segments[1:OptionCount+1])
		return Decoded{Text: segments[0], Options: opts}, nil
	case n == 2:
		return Decoded{Text: segments[0], Options: []string{}}, nil
	default:
		return Decoded{}, &DecodeError{Segments: n}
	}
}

// Encode joins text and options into the wire form read by Decode.
func Encode(text string, options ...string) string {
	parts := make([]string, 0, len(options)+1)
	parts = append(parts, text)
	parts = append(parts, options...)
	return strings.Join(parts, Delimiter)
}
