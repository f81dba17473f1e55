package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/shared/logger"
)

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Infow("request handled",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}
