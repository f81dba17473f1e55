package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/utils"
)

// Recovery converts panics into a generic 500 response.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("panic recovered",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
				c.Abort()
			}
		}()
		c.Next()
	}
}
