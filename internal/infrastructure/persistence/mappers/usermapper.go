package mappers

import (
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
)

// UserMapper converts between the account aggregate and its gorm model.
type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(account *user.Account) *models.UserModel {
	model := &models.UserModel{
		ID:           account.ID(),
		Email:        account.Email().String(),
		Name:         account.Name(),
		PasswordHash: account.PasswordHash(),
		AvatarURL:    account.AvatarURL(),
		Bio:          account.Bio(),
		CreatedAt:    account.CreatedAt(),
		UpdatedAt:    account.UpdatedAt(),
	}
	if u := account.Username(); u != nil {
		value := u.String()
		model.Username = &value
	}
	return model
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.Account, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in storage: %w", err)
	}

	var username *vo.Username
	if model.Username != nil {
		username, err = vo.NewUsername(*model.Username)
		if err != nil {
			return nil, fmt.Errorf("invalid username in storage: %w", err)
		}
	}

	return user.ReconstructAccount(
		model.ID,
		email,
		username,
		model.Name,
		model.PasswordHash,
		model.AvatarURL,
		model.Bio,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// OAuthAccountMapper converts between provider links and their gorm model.
type OAuthAccountMapper struct{}

func NewOAuthAccountMapper() *OAuthAccountMapper {
	return &OAuthAccountMapper{}
}

func (m *OAuthAccountMapper) ToModel(link *user.OAuthAccount) *models.OAuthAccountModel {
	return &models.OAuthAccountModel{
		ID:             link.ID(),
		UserID:         link.UserID(),
		Provider:       link.Provider(),
		ProviderUserID: link.ProviderUserID(),
		CreatedAt:      link.CreatedAt(),
	}
}

func (m *OAuthAccountMapper) ToDomain(model *models.OAuthAccountModel) (*user.OAuthAccount, error) {
	return user.ReconstructOAuthAccount(
		model.ID,
		model.UserID,
		model.Provider,
		model.ProviderUserID,
		model.CreatedAt,
	)
}
