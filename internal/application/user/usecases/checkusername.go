package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type CheckUsernameCommand struct {
	Username string
}

type CheckUsernameResult struct {
	Valid     bool
	Available bool
	Message   string
}

// CheckUsernameUseCase answers the registration form's availability probe.
// Syntactically invalid usernames are reported without touching storage.
// The answer is advisory only; registration still races against other
// writers and the unique index settles it.
type CheckUsernameUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCheckUsernameUseCase(userRepo user.Repository, logger logger.Interface) *CheckUsernameUseCase {
	return &CheckUsernameUseCase{userRepo: userRepo, logger: logger}
}

func (uc *CheckUsernameUseCase) Execute(ctx context.Context, cmd CheckUsernameCommand) (*CheckUsernameResult, error) {
	if _, err := vo.NewUsername(cmd.Username); err != nil {
		message := "Invalid username"
		if appErr := errors.GetAppError(err); appErr != nil {
			message = appErr.Message
		}
		return &CheckUsernameResult{Valid: false, Available: false, Message: message}, nil
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if taken {
		return &CheckUsernameResult{Valid: true, Available: false, Message: "Username is taken"}, nil
	}
	return &CheckUsernameResult{Valid: true, Available: true, Message: "Username is available"}, nil
}
