package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/services/markdown"
)

type GetChapterQuery struct {
	ChapterID uint
	ViewerID  uint
}

type GetChapterResult struct {
	Chapter       *story.Chapter
	Story         *story.Story
	HTML          string
	PrevChapterID uint
	NextChapterID uint
}

// GetChapterUseCase loads a chapter for reading: the markdown rendered to
// sanitized HTML, the surrounding story and the previous/next chapter IDs
// for navigation. Each read increments the chapter's view counter.
type GetChapterUseCase struct {
	storyRepo   story.Repository
	chapterRepo story.ChapterRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetChapterUseCase(
	storyRepo story.Repository,
	chapterRepo story.ChapterRepository,
	markdownService markdown.Service,
	logger logger.Interface,
) *GetChapterUseCase {
	return &GetChapterUseCase{
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		markdown:    markdownService,
		logger:      logger,
	}
}

func (uc *GetChapterUseCase) Execute(ctx context.Context, query GetChapterQuery) (*GetChapterResult, error) {
	chapter, err := uc.chapterRepo.GetByID(ctx, query.ChapterID)
	if err != nil {
		uc.logger.Errorw("failed to get chapter", "error", err, "chapter_id", query.ChapterID)
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	if chapter == nil {
		return nil, errors.NewNotFoundError("Chapter not found")
	}

	s, err := uc.storyRepo.GetByID(ctx, chapter.StoryID())
	if err != nil {
		uc.logger.Errorw("failed to get story", "error", err, "story_id", chapter.StoryID())
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if s == nil || !s.IsVisibleTo(query.ViewerID) {
		return nil, errors.NewNotFoundError("Chapter not found")
	}

	html, err := uc.markdown.ToHTMLSanitized(chapter.Content())
	if err != nil {
		uc.logger.Errorw("failed to render chapter", "error", err, "chapter_id", chapter.ID())
		return nil, fmt.Errorf("failed to render chapter: %w", err)
	}

	// Losing a view count is preferable to failing the read.
	if err := uc.chapterRepo.IncrementViews(ctx, chapter.ID()); err != nil {
		uc.logger.Warnw("failed to increment chapter views", "error", err, "chapter_id", chapter.ID())
	}

	siblings, err := uc.chapterRepo.ListByStoryID(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to list chapters", "error", err, "story_id", s.ID())
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	result := &GetChapterResult{Chapter: chapter, Story: s, HTML: html}
	for i, sibling := range siblings {
		if sibling.ID() != chapter.ID() {
			continue
		}
		if i > 0 {
			result.PrevChapterID = siblings[i-1].ID()
		}
		if i < len(siblings)-1 {
			result.NextChapterID = siblings[i+1].ID()
		}
		break
	}
	return result, nil
}
