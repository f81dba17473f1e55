package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/logger"
)

type ListOwnStoriesQuery struct {
	AuthorID uint
	Limit    int
	Offset   int
}

type ListOwnStoriesResult struct {
	Stories []*story.Story
	Total   int64
}

// ListOwnStoriesUseCase lists the signed-in author's stories, drafts
// included.
type ListOwnStoriesUseCase struct {
	storyRepo story.Repository
	logger    logger.Interface
}

func NewListOwnStoriesUseCase(storyRepo story.Repository, logger logger.Interface) *ListOwnStoriesUseCase {
	return &ListOwnStoriesUseCase{storyRepo: storyRepo, logger: logger}
}

func (uc *ListOwnStoriesUseCase) Execute(ctx context.Context, query ListOwnStoriesQuery) (*ListOwnStoriesResult, error) {
	stories, total, err := uc.storyRepo.List(ctx, story.ListFilter{
		AuthorID: query.AuthorID,
		ViewerID: query.AuthorID,
		Sort:     story.SortRecent,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		uc.logger.Errorw("failed to list stories", "error", err, "author_id", query.AuthorID)
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	return &ListOwnStoriesResult{Stories: stories, Total: total}, nil
}
