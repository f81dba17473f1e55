package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/interfaces/http/handlers"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
)

// RegisterUserRoutes mounts the public profile and profile edit endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler, authMW *middleware.AuthMiddleware) {
	api.GET("/users/:username", h.GetPublicProfile)
	api.PUT("/user/profile", authMW.RequireAuth(), h.UpdateProfile)
}
