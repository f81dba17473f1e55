package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type GetAccountQuery struct {
	UserID uint
}

type GetAccountResult struct {
	Account *user.Account
}

// GetAccountUseCase loads the signed-in user's own account.
type GetAccountUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetAccountUseCase(userRepo user.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, query GetAccountQuery) (*GetAccountResult, error) {
	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return &GetAccountResult{Account: account}, nil
}
