package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/interfaces/http/handlers"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
)

// RegisterAuthRoutes mounts the authentication endpoints under /auth.
func RegisterAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, authMW *middleware.AuthMiddleware) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/check-username", h.CheckUsername)
		auth.GET("/oauth/:provider", h.OAuthStart)
		auth.GET("/oauth/:provider/callback", h.OAuthCallback)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", authMW.RequireAuth(), h.Me)
	}
}
