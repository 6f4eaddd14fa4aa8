package quiz

import "strings"

// Record is one stored question as handed to a session.
type Record struct {
	// PromptRaw is the Delimiter-encoded question text and options.
	PromptRaw string

	// CorrectAnswer is the option text, or "True"/"False" for true/false items.
	CorrectAnswer string

	// QuizName labels the containing quiz. Sessions never read it.
	QuizName string
}

// AnswerRecord is the audit entry written for every accepted answer.
type AnswerRecord struct {
	QuestionIndex int
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// Phase is the coarse position of a session in its lifecycle.
type Phase int

const (
	PhaseEmpty      Phase = iota // No questions loaded
	PhaseInProgress              // Waiting for an answer to the current question
	PhaseOver                    // Every question answered
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseInProgress:
		return "in-progress"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is a snapshot of a session.
type State struct {
	Questions    []Record
	CurrentIndex int
	Score        int
	IsOver       bool
	AnswerLog    []AnswerRecord
}

// Session owns a single quiz attempt. It is not safe for concurrent use;
// run one Session per attempt.
type Session struct {
	questions    []Record
	currentIndex int
	score        int
	isOver       bool
	answerLog    []AnswerRecord
}

// NewSession returns a session in the empty state.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Start discards whatever the session held and begins a new attempt over
// questions. The slice is copied.
func (s *Session) Start(questions []Record) {
	s.questions = append([]Record{}, questions...)
	s.currentIndex = 0
	s.score = 0
	s.isOver = false
	s.answerLog = []AnswerRecord{}
}

// SubmitAnswer judges answer against the current question and advances.
//
// Matching lowercases both sides and compares exactly; surrounding whitespace
// is significant. The returned bool is false, and nothing changes, when the
// attempt is already over or holds no questions.
func (s *Session) SubmitAnswer(answer string) (AnswerRecord, bool) {
	if s.isOver || len(s.questions) == 0 {
		return AnswerRecord{}, false
	}

	q := s.questions[s.currentIndex]
	rec := AnswerRecord{
		QuestionIndex: s.currentIndex,
		UserAnswer:    answer,
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     strings.ToLower(answer) == strings.ToLower(q.CorrectAnswer),
	}
	s.answerLog = append(s.answerLog, rec)
	if rec.IsCorrect {
		s.score++
	}

	if s.currentIndex == len(s.questions)-1 {
		s.isOver = true
	} else {
		s.currentIndex++
	}
	return rec, true
}

// Reset returns the session to the empty state.
func (s *Session) Reset() {
	s.questions = []Record{}
	s.currentIndex = 0
	s.score = 0
	s.isOver = false
	s.answerLog = []AnswerRecord{}
}

// Phase reports where the session is in its lifecycle.
func (s *Session) Phase() Phase {
	switch {
	case len(s.questions) == 0:
		return PhaseEmpty
	case s.isOver:
		return PhaseOver
	default:
		return PhaseInProgress
	}
}

// Current returns the question awaiting an answer. After the attempt is over
// it returns the last question.
func (s *Session) Current() (Record, bool) {
	if len(s.questions) == 0 {
		return Record{}, false
	}
	return s.questions[s.currentIndex], true
}

func (s *Session) CurrentIndex() int { return s.currentIndex }
func (s *Session) Score() int        { return s.score }
func (s *Session) IsOver() bool      { return s.isOver }
func (s *Session) Len() int          { return len(s.questions) }

// AnswerLog returns a copy of the answers accepted so far.
func (s *Session) AnswerLog() []AnswerRecord {
	return append([]AnswerRecord{}, s.answerLog...)
}

// State returns a deep copy of the session.
func (s *Session) State() State {
	return State{
		Questions:    append([]Record{}, s.questions...),
		CurrentIndex: s.currentIndex,
		Score:        s.score,
		IsOver:       s.isOver,
		AnswerLog:    s.AnswerLog(),
	}
}
