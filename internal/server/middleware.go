package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ProfileHeader selects the profile a request acts for.
const ProfileHeader = "X-LearningHub-Profile"

const (
	profileKey    = "profile"
	maxProfileLen = 64
)

// withProfile resolves the request's profile, falling back to def.
func withProfile(def string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := strings.TrimSpace(c.GetHeader(ProfileHeader))
		if profile == "" {
			profile = def
		}
		if len(profile) > maxProfileLen {
			badRequest(c, "profile name too long")
			return
		}
		c.Set(profileKey, profile)
		c.Next()
	}
}

func profileFrom(c *gin.Context) string {
	return c.GetString(profileKey)
}

// rateLimit allows perMinute requests per minute with the given burst,
// shared by every caller of the routes it guards.
func rateLimit(perMinute, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			fail(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}

// requestLog writes one line per request.
func requestLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("profile", profileFrom(c)),
		)
	}
}

// recovery converts panics into a 500 envelope.
func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		fail(c, http.StatusInternalServerError, "Internal server error")
	})
}
