package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	Account      *user.Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// LoginWithPasswordUseCase verifies a credential login. Every failure mode
// that depends on the submitted identity collapses into the same opaque
// error: unknown email, wrong password and provider-only accounts are
// indistinguishable to the caller.
type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenService   TokenService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Email and password are required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := account.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	tokens, err := uc.tokenService.Generate(account)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &LoginWithPasswordResult{
		Account:      account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
