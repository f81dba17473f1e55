package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/logger"
)

type SearchStoriesQuery struct {
	Query    string
	Genre    string
	Language string
	Sort     string
	Limit    int
	Offset   int
	ViewerID uint
}

type SearchStoriesResult struct {
	Stories []*story.Story
	Total   int64
	Message string
}

// SearchStoriesUseCase searches published stories by title and description.
type SearchStoriesUseCase struct {
	storyRepo story.Repository
	logger    logger.Interface
}

func NewSearchStoriesUseCase(storyRepo story.Repository, logger logger.Interface) *SearchStoriesUseCase {
	return &SearchStoriesUseCase{storyRepo: storyRepo, logger: logger}
}

func (uc *SearchStoriesUseCase) Execute(ctx context.Context, query SearchStoriesQuery) (*SearchStoriesResult, error) {
	q := strings.TrimSpace(query.Query)
	if q == "" {
		return &SearchStoriesResult{
			Stories: []*story.Story{},
			Message: "Please enter a search term",
		}, nil
	}

	stories, total, err := uc.storyRepo.List(ctx, story.ListFilter{
		Query:    q,
		Genre:    query.Genre,
		Language: query.Language,
		Sort:     query.Sort,
		Limit:    query.Limit,
		Offset:   query.Offset,
		ViewerID: query.ViewerID,
	})
	if err != nil {
		uc.logger.Errorw("failed to search stories", "error", err, "query", q)
		return nil, fmt.Errorf("failed to search stories: %w", err)
	}

	return &SearchStoriesResult{Stories: stories, Total: total}, nil
}
