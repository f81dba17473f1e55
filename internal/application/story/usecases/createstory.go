package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/logger"
)

type CreateStoryCommand struct {
	AuthorID    uint
	Title       string
	Description string
	Genre       string
	Language    string
	CoverURL    *string
	Status      string
	Mature      bool
	Publish     bool
}

type CreateStoryResult struct {
	Story *story.Story
}

// CreateStoryUseCase creates a story for the signed-in author, optionally
// publishing it immediately.
type CreateStoryUseCase struct {
	storyRepo story.Repository
	logger    logger.Interface
}

func NewCreateStoryUseCase(storyRepo story.Repository, logger logger.Interface) *CreateStoryUseCase {
	return &CreateStoryUseCase{storyRepo: storyRepo, logger: logger}
}

func (uc *CreateStoryUseCase) Execute(ctx context.Context, cmd CreateStoryCommand) (*CreateStoryResult, error) {
	s, err := story.NewStory(cmd.AuthorID, cmd.Title, cmd.Description, cmd.Genre, cmd.Language)
	if err != nil {
		return nil, err
	}
	if cmd.CoverURL != nil {
		s.SetCoverURL(cmd.CoverURL)
	}
	if cmd.Status != "" {
		if err := s.SetStatus(cmd.Status); err != nil {
			return nil, err
		}
	}
	s.SetMature(cmd.Mature)
	if cmd.Publish {
		s.Publish()
	}

	if err := uc.storyRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create story", "error", err, "author_id", cmd.AuthorID)
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	uc.logger.Infow("story created", "story_id", s.ID(), "author_id", cmd.AuthorID, "published", s.IsPublished())
	return &CreateStoryResult{Story: s}, nil
}
