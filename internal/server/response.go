package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/learninghub/internal/generate"
	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/store"
)

// Response is the envelope of every API reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PageResponse wraps a paginated list.
type PageResponse struct {
	List  any `json:"list"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "success", Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "created", Data: data})
}

func fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{Code: code, Message: message})
}

func badRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

// writeError maps service errors to status codes. Unknown errors are logged
// and reported as a generic 500.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, library.ErrEmptyInput):
		badRequest(c, err.Error())
	case errors.Is(err, library.ErrLimitReached):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, library.ErrUnavailable):
		fail(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, generate.ErrNoQuestions), errors.Is(err, generate.ErrNoFlashcards):
		s.log.Warn("generation produced nothing usable", zap.Error(err))
		fail(c, http.StatusInternalServerError, err.Error())
	default:
		s.log.Error("internal server error", zap.String("path", c.FullPath()), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
