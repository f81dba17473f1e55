package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type GetStoryQuery struct {
	StoryID  uint
	ViewerID uint
}

type GetStoryResult struct {
	Story    *story.Story
	Chapters []*story.Chapter
	Liked    bool
}

// GetStoryUseCase loads a story page: the story, its chapter list and
// whether the viewer has liked it. Drafts resolve as not found for anyone
// but their author, so their existence is not leaked.
type GetStoryUseCase struct {
	storyRepo   story.Repository
	chapterRepo story.ChapterRepository
	likeRepo    story.LikeRepository
	logger      logger.Interface
}

func NewGetStoryUseCase(
	storyRepo story.Repository,
	chapterRepo story.ChapterRepository,
	likeRepo story.LikeRepository,
	logger logger.Interface,
) *GetStoryUseCase {
	return &GetStoryUseCase{
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		likeRepo:    likeRepo,
		logger:      logger,
	}
}

func (uc *GetStoryUseCase) Execute(ctx context.Context, query GetStoryQuery) (*GetStoryResult, error) {
	s, err := uc.storyRepo.GetByID(ctx, query.StoryID)
	if err != nil {
		uc.logger.Errorw("failed to get story", "error", err, "story_id", query.StoryID)
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if s == nil || !s.IsVisibleTo(query.ViewerID) {
		return nil, errors.NewNotFoundError("Story not found")
	}

	chapters, err := uc.chapterRepo.ListByStoryID(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to list chapters", "error", err, "story_id", s.ID())
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	liked := false
	if query.ViewerID != 0 {
		liked, err = uc.likeRepo.Exists(ctx, query.ViewerID, s.ID())
		if err != nil {
			uc.logger.Errorw("failed to check like", "error", err, "story_id", s.ID())
			return nil, fmt.Errorf("failed to check like: %w", err)
		}
	}

	// Reads still succeed when the view counter bump fails.
	if err := uc.storyRepo.IncrementViews(ctx, s.ID()); err != nil {
		uc.logger.Warnw("failed to increment story views", "error", err, "story_id", s.ID())
	}

	return &GetStoryResult{Story: s, Chapters: chapters, Liked: liked}, nil
}
