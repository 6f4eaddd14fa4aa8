package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/learninghub/internal/quiz"
	"github.com/abhisek/learninghub/internal/store"
)

const maxPageSize = 50

type quizSummary struct {
	PackID        string    `json:"pack_id"`
	Name          string    `json:"name"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type quizQuestion struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Text    string   `json:"text,omitempty"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Invalid bool     `json:"invalid,omitempty"`
}

type quizDetail struct {
	quizSummary
	Questions []quizQuestion `json:"questions"`
}

type flashcard struct {
	ID        int       `json:"id"`
	PackID    string    `json:"pack_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type generateRequest struct {
	Prompt   string `json:"prompt"`
	Detailed bool   `json:"detailed"`
}

type renameRequest struct {
	Name string `json:"name"`
}

func summaryJSON(p store.PackSummary) quizSummary {
	return quizSummary{
		PackID:        p.PackID,
		Name:          p.Name,
		QuestionCount: p.QuestionCount,
		CreatedAt:     p.CreatedAt,
	}
}

// parsePage reads page and size query parameters.
func parsePage(c *gin.Context) (store.Page, bool) {
	page := store.Page{Number: 1, Size: store.DefaultPageSize}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			badRequest(c, "page must be a positive integer")
			return page, false
		}
		page.Number = n
	}
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageSize {
			badRequest(c, "size must be between 1 and 50")
			return page, false
		}
		page.Size = n
	}
	return page, true
}

func (s *Server) health(c *gin.Context) {
	if err := s.svc.Ping(c.Request.Context()); err != nil {
		fail(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	success(c, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}

func (s *Server) listQuizzes(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	packs, total, err := s.svc.ListQuizzes(c.Request.Context(), profileFrom(c), page)
	if err != nil {
		s.writeError(c, err)
		return
	}

	list := make([]quizSummary, len(packs))
	for i, p := range packs {
		list[i] = summaryJSON(p)
	}
	success(c, PageResponse{List: list, Total: total, Page: page.Number, Limit: page.Size})
}

func (s *Server) getQuiz(c *gin.Context) {
	pack, err := s.svc.GetQuiz(c.Request.Context(), profileFrom(c), c.Param("pack_id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	detail := quizDetail{
		quizSummary: summaryJSON(pack.PackSummary),
		Questions:   make([]quizQuestion, len(pack.Questions)),
	}
	for i, q := range pack.Questions {
		out := quizQuestion{ID: q.ID, Prompt: q.Question, Answer: q.Answer, Options: []string{}}
		if d, err := quiz.Decode(q.Question); err != nil {
			out.Invalid = true
		} else {
			out.Text = d.Text
			out.Options = d.Options
		}
		detail.Questions[i] = out
	}
	success(c, detail)
}

func (s *Server) renameQuiz(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := s.svc.RenameQuiz(c.Request.Context(), profileFrom(c), c.Param("pack_id"), req.Name); err != nil {
		s.writeError(c, err)
		return
	}
	success(c, gin.H{"pack_id": c.Param("pack_id"), "name": req.Name})
}

func (s *Server) deleteQuiz(c *gin.Context) {
	if err := s.svc.DeleteQuiz(c.Request.Context(), profileFrom(c), c.Param("pack_id")); err != nil {
		s.writeError(c, err)
		return
	}
	success(c, nil)
}

func (s *Server) generateQuiz(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := s.svc.GenerateQuiz(c.Request.Context(), profileFrom(c), req.Prompt)
	if err != nil {
		s.writeError(c, err)
		return
	}
	created(c, gin.H{
		"pack_id":   res.PackID,
		"name":      res.Name,
		"questions": res.Questions,
		"dropped":   res.Dropped,
	})
}

func (s *Server) listFlashcards(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	cards, total, err := s.svc.ListFlashcards(c.Request.Context(), profileFrom(c), page)
	if err != nil {
		s.writeError(c, err)
		return
	}

	list := make([]flashcard, len(cards))
	for i, fc := range cards {
		list[i] = flashcard{
			ID:        fc.ID,
			PackID:    fc.PackID,
			Question:  fc.Question,
			Answer:    fc.Answer,
			CreatedAt: fc.CreatedAt,
		}
	}
	success(c, PageResponse{List: list, Total: total, Page: page.Number, Limit: page.Size})
}

func (s *Server) deleteFlashcard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid flashcard id")
		return
	}
	if err := s.svc.DeleteFlashcard(c.Request.Context(), profileFrom(c), id); err != nil {
		s.writeError(c, err)
		return
	}
	success(c, nil)
}

func (s *Server) generateFlashcards(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := s.svc.GenerateFlashcards(c.Request.Context(), profileFrom(c), req.Prompt, req.Detailed)
	if err != nil {
		s.writeError(c, err)
		return
	}

	cards := make([]gin.H, len(res.Cards))
	for i, fc := range res.Cards {
		cards[i] = gin.H{"question": fc.Question, "answer": fc.Answer}
	}
	created(c, gin.H{"pack_id": res.PackID, "flashcards": cards})
}

func (s *Server) limits(c *gin.Context) {
	usage, err := s.svc.Usage(c.Request.Context(), profileFrom(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	success(c, gin.H{
		"q_limit":              usage.QuizLimit,
		"q_current":            usage.QuizCount,
		"fc_limit":             usage.FlashcardLimit,
		"fc_current":           usage.FlashcardCount,
		"quizzes_remaining":    usage.QuizzesRemaining(),
		"flashcards_remaining": usage.FlashcardsRemaining(),
	})
}
