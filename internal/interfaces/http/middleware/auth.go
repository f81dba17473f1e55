package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/infrastructure/auth"
	"github.com/mado-app/mado/internal/shared/constants"
	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid access token. The token is
// read from the auth cookie first, then the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.AccountID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth resolves the viewer identity when a valid token is present
// and proceeds anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.AccountID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// UserID returns the authenticated account ID from the request context, or
// zero for anonymous requests.
func UserID(c *gin.Context) uint {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	id, ok := value.(uint)
	if !ok {
		return 0
	}
	return id
}
