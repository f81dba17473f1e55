package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type CreateChapterCommand struct {
	AuthorID uint
	StoryID  uint
	Title    string
	Content  string
}

type CreateChapterResult struct {
	Chapter *story.Chapter
}

// CreateChapterUseCase appends a chapter to the author's own story. The
// chapter number is the next free position in the story.
type CreateChapterUseCase struct {
	storyRepo   story.Repository
	chapterRepo story.ChapterRepository
	logger      logger.Interface
}

func NewCreateChapterUseCase(
	storyRepo story.Repository,
	chapterRepo story.ChapterRepository,
	logger logger.Interface,
) *CreateChapterUseCase {
	return &CreateChapterUseCase{
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		logger:      logger,
	}
}

func (uc *CreateChapterUseCase) Execute(ctx context.Context, cmd CreateChapterCommand) (*CreateChapterResult, error) {
	s, err := uc.storyRepo.GetByID(ctx, cmd.StoryID)
	if err != nil {
		uc.logger.Errorw("failed to get story", "error", err, "story_id", cmd.StoryID)
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Story not found")
	}
	if s.AuthorID() != cmd.AuthorID {
		return nil, errors.NewForbiddenError("Only the author can add chapters")
	}

	number, err := uc.chapterRepo.NextNumber(ctx, cmd.StoryID)
	if err != nil {
		uc.logger.Errorw("failed to get next chapter number", "error", err, "story_id", cmd.StoryID)
		return nil, fmt.Errorf("failed to get next chapter number: %w", err)
	}

	chapter, err := story.NewChapter(cmd.StoryID, number, cmd.Title, cmd.Content)
	if err != nil {
		return nil, err
	}

	if err := uc.chapterRepo.Create(ctx, chapter); err != nil {
		uc.logger.Errorw("failed to create chapter", "error", err, "story_id", cmd.StoryID)
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}

	uc.logger.Infow("chapter created", "chapter_id", chapter.ID(), "story_id", cmd.StoryID, "number", number)
	return &CreateChapterResult{Chapter: chapter}, nil
}
