package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/constants"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type BrowseStoriesQuery struct {
	Genre    string
	Language string
	Status   string
	Sort     string
	Limit    int
	Offset   int
	ViewerID uint
}

type BrowseStoriesResult struct {
	Stories []*story.Story
	Total   int64
}

// BrowseStoriesUseCase lists published stories with genre, language and
// status filters.
type BrowseStoriesUseCase struct {
	storyRepo story.Repository
	logger    logger.Interface
}

func NewBrowseStoriesUseCase(storyRepo story.Repository, logger logger.Interface) *BrowseStoriesUseCase {
	return &BrowseStoriesUseCase{storyRepo: storyRepo, logger: logger}
}

func (uc *BrowseStoriesUseCase) Execute(ctx context.Context, query BrowseStoriesQuery) (*BrowseStoriesResult, error) {
	if query.Genre != "" && !constants.IsValidGenre(query.Genre) {
		return nil, errors.NewValidationError("Invalid genre")
	}
	if query.Language != "" && !constants.IsValidLanguage(query.Language) {
		return nil, errors.NewValidationError("Invalid language")
	}

	stories, total, err := uc.storyRepo.List(ctx, story.ListFilter{
		Genre:    query.Genre,
		Language: query.Language,
		Status:   query.Status,
		Sort:     query.Sort,
		Limit:    query.Limit,
		Offset:   query.Offset,
		ViewerID: query.ViewerID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list stories", "error", err)
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	return &BrowseStoriesResult{Stories: stories, Total: total}, nil
}
