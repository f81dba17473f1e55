package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Username string
	Password string
	Name     string
}

type RegisterWithPasswordResult struct {
	Account *user.Account
}

// RegisterWithPasswordUseCase creates a credential account. The pre-write
// existence checks give friendly conflict messages; the unique indexes
// remain the final arbiter, and the repository translates write-time
// violations into the same conflicts.
type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	mailer         WelcomeMailer
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	mailer WelcomeMailer,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		mailer:         mailer,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, err
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	// Display name defaults to the username when omitted.
	rawName := cmd.Name
	if rawName == "" {
		rawName = username.String()
	}
	name, err := vo.NewName(rawName)
	if err != nil {
		return nil, err
	}

	emailTaken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, errors.NewConflictError("Email already registered")
	}

	usernameTaken, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return nil, errors.NewConflictError("Username already taken")
	}

	account, err := user.NewAccount(email, username, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	if err := account.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create account", "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if uc.mailer != nil {
		if mailErr := uc.mailer.SendWelcome(email.String(), name.String()); mailErr != nil {
			uc.logger.Warnw("failed to send welcome email", "error", mailErr, "user_id", account.ID())
		}
	}

	uc.logger.Infow("user registered", "user_id", account.ID(), "username", username.String())

	return &RegisterWithPasswordResult{Account: account}, nil
}
