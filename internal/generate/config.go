package generate

// Config controls the behavior of the LLM generator.
type Config struct {
	// Validators run in order on every generated question; the first
	// failure drops the question.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxQuestions is the largest quiz ever requested.
	MaxQuestions int

	// MaxFlashcards is the largest flashcard set ever requested.
	MaxFlashcards int

	// MaxSourceChars truncates very long source text before prompting.
	MaxSourceChars int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoiceValidator{},
			&TrueFalseValidator{},
		},
		MaxTokens:      4096,
		Temperature:    0.4,
		MaxQuestions:   15,
		MaxFlashcards:  15,
		MaxSourceChars: 30000,
	}
}
