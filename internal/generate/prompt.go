package generate

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are an experienced professor preparing quiz questions for students from the material they provide. Always write in English.

Rules:
- Identify the most important concepts, facts, definitions and relationships in the material.
- Mix question kinds: multiple_choice, true_false and short_answer.
- multiple_choice: exactly 4 options with one correct answer and 3 plausible distractors. Prefix options with "A) ", "B) ", "C) ", "D) ". The answer must repeat the correct option verbatim.
- true_false: state a proposition as the question. The answer is exactly "True" or "False". Options are empty.
- short_answer: a clear question with a brief, definitive answer. Options are empty.
- Test understanding of important concepts, not trivia. Every question must be unambiguous and have one correct answer.
- Never use the sequence "|||||" anywhere.
- Name the quiz after its content. Do not include the word "Quiz" in the name.`

const flashcardSystemPrompt = `You are a flashcard maker. Read the material the user provides and turn every distinct fact into a question and answer flashcard.

Rules:
- Extract persons, dates, numbers, definitions, concepts, formulas, locations and events.
- One flashcard per fact. Split sentences that carry several facts.
- Phrase each question so it recalls exactly that fact.
- Omit opinions, narrative and transitions.
- Preserve formulas and chemical equations exactly in the answer.
- Never use the sequence "|||||" anywhere.
- Do not use bullet points, numbering or markdown.`

const conciseRule = "- Keep both question and answer concise: one sentence or equation, no extra commentary."

const detailedRule = "- Give detailed answers: state the fact, then add one or two sentences of supporting context from the material."

// buildQuizMessage constructs the user message for quiz generation.
func buildQuizMessage(text string, maxQuestions int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate at most %d questions, focusing on the most important content.\n\n", maxQuestions)
	b.WriteString("Material:\n<<<USER_TEXT_START>>>\n")
	b.WriteString(text)
	b.WriteString("\n<<<USER_TEXT_END>>>")
	return b.String()
}

// flashcardSystem returns the flashcard system prompt with the answer
// style rule appended.
func flashcardSystem(detailed bool) string {
	if detailed {
		return flashcardSystemPrompt + "\n" + detailedRule
	}
	return flashcardSystemPrompt + "\n" + conciseRule
}

// buildFlashcardMessage constructs the user message for flashcard generation.
func buildFlashcardMessage(text string, maxCards int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate at most %d flashcards.\n\n", maxCards)
	b.WriteString("Material:\n<<<USER_TEXT_START>>>\n")
	b.WriteString(text)
	b.WriteString("\n<<<USER_TEXT_END>>>")
	return b.String()
}

// truncateSource cuts text to at most max runes. Zero disables the cap.
func truncateSource(text string, max int) string {
	if max <= 0 {
		return text
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max])
}
