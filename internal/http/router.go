package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Origins always allowed alongside ALLOWED_ORIGINS, for the local frontend.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5174",
}

func NewRouter(handler *Handler, env string, allowedOrigins []string, log zerolog.Logger) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:  mergeOrigins(allowedOrigins),
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	handler.Register(router)

	return router
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= 400 {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}

func mergeOrigins(extra []string) []string {
	seen := make(map[string]struct{}, len(defaultOrigins)+len(extra))
	merged := make([]string, 0, len(defaultOrigins)+len(extra))
	for _, origin := range append(append([]string{}, defaultOrigins...), extra...) {
		if _, ok := seen[origin]; ok {
			continue
		}
		seen[origin] = struct{}{}
		merged = append(merged, origin)
	}
	return merged
}
