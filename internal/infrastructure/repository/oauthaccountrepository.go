package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/infrastructure/persistence/mappers"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
	"github.com/mado-app/mado/internal/shared/errors"
)

// OAuthAccountRepository is the gorm implementation of
// user.OAuthAccountRepository.
type OAuthAccountRepository struct {
	db     *gorm.DB
	mapper *mappers.OAuthAccountMapper
}

func NewOAuthAccountRepository(db *gorm.DB) *OAuthAccountRepository {
	return &OAuthAccountRepository{
		db:     db,
		mapper: mappers.NewOAuthAccountMapper(),
	}
}

func (r *OAuthAccountRepository) Create(ctx context.Context, link *user.OAuthAccount) error {
	model := r.mapper.ToModel(link)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("Provider identity already linked")
		}
		return fmt.Errorf("failed to create oauth account: %w", err)
	}
	return link.SetID(model.ID)
}

func (r *OAuthAccountRepository) GetByProvider(ctx context.Context, provider, providerUserID string) (*user.OAuthAccount, error) {
	var model models.OAuthAccountModel
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth account: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OAuthAccountRepository) ListByUserID(ctx context.Context, userID uint) ([]*user.OAuthAccount, error) {
	var rows []models.OAuthAccountModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list oauth accounts: %w", err)
	}

	links := make([]*user.OAuthAccount, 0, len(rows))
	for i := range rows {
		link, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}
