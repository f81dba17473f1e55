package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	Account     *user.Account
	AccessToken string
}

// RefreshTokenUseCase mints a fresh access token from a refresh token. The
// account is re-read so the new token reflects the current username and
// avatar rather than the values frozen into the refresh token.
type RefreshTokenUseCase struct {
	userRepo     user.Repository
	verifier     RefreshTokenVerifier
	tokenService TokenService
	logger       logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	verifier RefreshTokenVerifier,
	tokenService TokenService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		verifier:     verifier,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	accountID, err := uc.verifier.VerifyRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid or expired refresh token")
	}

	account, err := uc.userRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", accountID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewUnauthorizedError("Invalid or expired refresh token")
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(account)
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", accountID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &RefreshTokenResult{Account: account, AccessToken: accessToken}, nil
}
