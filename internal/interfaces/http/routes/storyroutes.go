package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/interfaces/http/handlers"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
)

// RegisterStoryRoutes mounts the story, chapter and search endpoints.
func RegisterStoryRoutes(api *gin.RouterGroup, h *handlers.StoryHandler, authMW *middleware.AuthMiddleware) {
	stories := api.Group("/stories")
	{
		stories.GET("", authMW.OptionalAuth(), h.BrowseStories)
		stories.POST("", authMW.RequireAuth(), h.CreateStory)
		stories.GET("/mine", authMW.RequireAuth(), h.ListOwnStories)
		stories.GET("/:id", authMW.OptionalAuth(), h.GetStory)
		stories.POST("/:id/like", authMW.RequireAuth(), h.ToggleLike)
		stories.POST("/:id/chapters", authMW.RequireAuth(), h.CreateChapter)
	}

	api.GET("/chapters/:id", authMW.OptionalAuth(), h.GetChapter)
	api.GET("/search", authMW.OptionalAuth(), h.SearchStories)
}
