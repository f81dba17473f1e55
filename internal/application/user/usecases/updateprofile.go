package usecases

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

const BioMaxLength = 200

type UpdateProfileCommand struct {
	UserID    uint
	Name      string
	Bio       *string
	AvatarURL *string
}

type UpdateProfileResult struct {
	Account *user.Account
}

// UpdateProfileUseCase edits the signed-in user's display name, bio and
// avatar. The username is deliberately not editable here.
type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	var name *vo.Name
	if cmd.Name != "" {
		name, err = vo.NewName(cmd.Name)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Bio != nil && len([]rune(*cmd.Bio)) > BioMaxLength {
		return nil, errors.NewValidationError("Bio must be less than 200 characters")
	}
	// An empty avatar string clears the stored avatar.
	avatar := cmd.AvatarURL
	if avatar != nil {
		if *avatar == "" {
			avatar = nil
		} else if err := validateAvatarURL(*avatar); err != nil {
			return nil, err
		}
	}

	account.UpdateProfile(name, cmd.Bio, avatar)

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)
	return &UpdateProfileResult{Account: account}, nil
}

func validateAvatarURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return errors.NewValidationError("Avatar must be a valid URL")
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return errors.NewValidationError("Avatar must be a valid URL")
	}
	return nil
}
