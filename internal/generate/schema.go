package generate

import "github.com/abhisek/learninghub/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-pack",
	Description: "A named quiz built from study material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quiz_name": map[string]any{
				"type":        "string",
				"description": "Descriptive name for the quiz. Must not contain the word Quiz.",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{string(KindMultipleChoice), string(KindTrueFalse), string(KindShortAnswer)},
							"description": "How the learner answers",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, one sentence where possible",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for multiple_choice. Empty array otherwise.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "For multiple_choice the exact text of the correct option; for true_false True or False; otherwise a short definitive answer.",
						},
					},
					"required":             []any{"kind", "question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quiz_name", "questions"},
		"additionalProperties": false,
	},
}

// FlashcardSchema defines the JSON schema for flashcard generation responses.
var FlashcardSchema = &llm.Schema{
	Name:        "flashcard-set",
	Description: "Question and answer flashcards extracted from study material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "Prompt that recalls exactly one fact",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The fact being recalled",
						},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"flashcards"},
		"additionalProperties": false,
	},
}
