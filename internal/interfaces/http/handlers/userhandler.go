package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/application/user/usecases"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/utils"
)

type getPublicProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetPublicProfileCommand) (*usecases.GetPublicProfileResult, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.UpdateProfileResult, error)
}

// UserHandler serves public author pages and profile edits.
type UserHandler struct {
	getProfileUC    getPublicProfileUseCase
	updateProfileUC updateProfileUseCase
	logger          logger.Interface
}

func NewUserHandler(
	getProfileUC getPublicProfileUseCase,
	updateProfileUC updateProfileUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		logger:          logger,
	}
}

// GetPublicProfile returns an author page by username.
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetPublicProfileCommand{
		Username: c.Param("username"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile := result.Account.Profile()
	utils.OKResponse(c, gin.H{
		"user": gin.H{
			"username": profile.Username,
			"name":     profile.Name,
			"avatar":   profile.AvatarURL,
			"bio":      profile.Bio,
		},
		"stories": storyBodies(result.Stories),
	})
}

type updateProfileRequest struct {
	Name      string  `json:"name" validate:"omitempty,max=50"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar"`
}

// UpdateProfile edits the signed-in user's display name, bio and avatar.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:    middleware.UserID(c),
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile := result.Account.Profile()
	utils.OKResponse(c, gin.H{
		"success": true,
		"user": gin.H{
			"id":       profile.ID,
			"username": profile.Username,
			"name":     profile.Name,
			"avatar":   profile.AvatarURL,
			"bio":      profile.Bio,
		},
	})
}
