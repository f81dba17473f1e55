package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type GetPublicProfileCommand struct {
	Username string
}

type GetPublicProfileResult struct {
	Account *user.Account
	Stories []*story.Story
}

// GetPublicProfileUseCase resolves a public author page: the account behind
// a username plus their published stories.
type GetPublicProfileUseCase struct {
	userRepo  user.Repository
	storyRepo story.Repository
	logger    logger.Interface
}

func NewGetPublicProfileUseCase(userRepo user.Repository, storyRepo story.Repository, logger logger.Interface) *GetPublicProfileUseCase {
	return &GetPublicProfileUseCase{
		userRepo:  userRepo,
		storyRepo: storyRepo,
		logger:    logger,
	}
}

func (uc *GetPublicProfileUseCase) Execute(ctx context.Context, cmd GetPublicProfileCommand) (*GetPublicProfileResult, error) {
	account, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	stories, _, err := uc.storyRepo.List(ctx, story.ListFilter{
		AuthorID: account.ID(),
		Sort:     story.SortRecent,
	})
	if err != nil {
		uc.logger.Errorw("failed to list stories", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	return &GetPublicProfileResult{Account: account, Stories: stories}, nil
}
