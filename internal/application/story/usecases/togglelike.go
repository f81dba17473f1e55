package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type ToggleLikeCommand struct {
	UserID  uint
	StoryID uint
}

type ToggleLikeResult struct {
	Liked bool
}

// ToggleLikeUseCase flips the user's like on a story and reports the end
// state. Concurrent identical toggles converge: the unique index on
// (user_id, story_id) absorbs duplicate inserts and a missing row makes the
// delete a no-op.
type ToggleLikeUseCase struct {
	storyRepo story.Repository
	likeRepo  story.LikeRepository
	logger    logger.Interface
}

func NewToggleLikeUseCase(storyRepo story.Repository, likeRepo story.LikeRepository, logger logger.Interface) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{storyRepo: storyRepo, likeRepo: likeRepo, logger: logger}
}

func (uc *ToggleLikeUseCase) Execute(ctx context.Context, cmd ToggleLikeCommand) (*ToggleLikeResult, error) {
	s, err := uc.storyRepo.GetByID(ctx, cmd.StoryID)
	if err != nil {
		uc.logger.Errorw("failed to get story", "error", err, "story_id", cmd.StoryID)
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if s == nil || !s.IsVisibleTo(cmd.UserID) {
		return nil, errors.NewNotFoundError("Story not found")
	}

	liked, err := uc.likeRepo.Exists(ctx, cmd.UserID, cmd.StoryID)
	if err != nil {
		uc.logger.Errorw("failed to check like", "error", err, "story_id", cmd.StoryID)
		return nil, fmt.Errorf("failed to check like: %w", err)
	}

	if liked {
		if err := uc.likeRepo.Delete(ctx, cmd.UserID, cmd.StoryID); err != nil {
			uc.logger.Errorw("failed to delete like", "error", err, "story_id", cmd.StoryID)
			return nil, fmt.Errorf("failed to delete like: %w", err)
		}
		return &ToggleLikeResult{Liked: false}, nil
	}

	like, err := story.NewLike(cmd.UserID, cmd.StoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to create like: %w", err)
	}
	if err := uc.likeRepo.Create(ctx, like); err != nil {
		uc.logger.Errorw("failed to create like", "error", err, "story_id", cmd.StoryID)
		return nil, fmt.Errorf("failed to create like: %w", err)
	}
	return &ToggleLikeResult{Liked: true}, nil
}
