package quiz

import "math"

// ReviewEntry pairs an answered question with what the user picked.
type ReviewEntry struct {
	Index    int
	Question Decoded

	// DecodeErr is set when the stored prompt could not be decoded.
	DecodeErr error

	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// Summary is the post-quiz view of a finished (or abandoned) attempt.
type Summary struct {
	QuizName string
	Total    int
	Answered int
	Score    int
	Percent  int
	Entries  []ReviewEntry
}

// Summarize builds a Summary from a session snapshot.
func Summarize(st State) Summary {
	sum := Summary{
		Total:    len(st.Questions),
		Answered: len(st.AnswerLog),
		Score:    st.Score,
		Percent:  Percentage(st.Score, len(st.Questions)),
		Entries:  make([]ReviewEntry, 0, len(st.AnswerLog)),
	}
	if len(st.Questions) > 0 {
		sum.QuizName = st.Questions[0].QuizName
	}

	for _, a := range st.AnswerLog {
		entry := ReviewEntry{
			Index:         a.QuestionIndex,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
		}
		if a.QuestionIndex >= 0 && a.QuestionIndex < len(st.Questions) {
			entry.Question, entry.DecodeErr = Decode(st.Questions[a.QuestionIndex].PromptRaw)
		}
		sum.Entries = append(sum.Entries, entry)
	}
	return sum
}

// Percentage returns score/total as a rounded whole percent, 0 when total is 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
