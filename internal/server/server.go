// Package server exposes the library over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/learninghub/internal/config"
	"github.com/abhisek/learninghub/internal/library"
)

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API for one library.
type Server struct {
	svc    *library.Service
	cfg    config.ServerConfig
	log    *zap.Logger
	engine *gin.Engine
}

// New builds the router. defaultProfile is used for requests that do not
// name one.
func New(svc *library.Service, cfg config.ServerConfig, defaultProfile string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(cfg.Mode)

	s := &Server{svc: svc, cfg: cfg, log: log, engine: gin.New()}
	s.engine.Use(recovery(log), withProfile(defaultProfile), requestLog(log))
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.health)

	generation := rateLimit(s.cfg.RatePerMinute, s.cfg.Burst)

	quizzes := api.Group("/quizzes")
	quizzes.GET("", s.listQuizzes)
	quizzes.POST("/generate", generation, s.generateQuiz)
	quizzes.GET("/:pack_id", s.getQuiz)
	quizzes.PATCH("/:pack_id", s.renameQuiz)
	quizzes.DELETE("/:pack_id", s.deleteQuiz)

	flashcards := api.Group("/flashcards")
	flashcards.GET("", s.listFlashcards)
	flashcards.POST("/generate", generation, s.generateFlashcards)
	flashcards.DELETE("/:id", s.deleteFlashcard)

	api.GET("/limits", s.limits)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
