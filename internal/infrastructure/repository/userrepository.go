package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/infrastructure/persistence/mappers"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
	"github.com/mado-app/mado/internal/shared/errors"
)

// UserRepository is the gorm implementation of user.Repository. Duplicate
// key violations on the unique email and username indexes are translated
// into conflict errors naming the colliding field, so write-time races
// surface the same way as pre-write existence checks.
type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, account *user.Account) error {
	model := r.mapper.ToModel(account)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return r.translateDuplicate(err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return account.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.Account, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.Account, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, account *user.Account) error {
	model := r.mapper.ToModel(account)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return r.translateDuplicate(err)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// AssignUsername performs the single guarded update that moves an account's
// username from null to a value. The WHERE clause keeps the assignment
// one-shot: if another request already assigned a username, no row matches
// and the account's existing username stands.
func (r *UserRepository) AssignUsername(ctx context.Context, id uint, username string, avatarURL *string) error {
	updates := map[string]interface{}{"username": username}
	if avatarURL != nil {
		updates["avatar_url"] = *avatarURL
	}

	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ? AND username IS NULL", id).
		Updates(updates)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return result.Error
		}
		return fmt.Errorf("failed to assign username: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Already assigned concurrently; callers re-read the account.
		return nil
	}
	return nil
}

func (r *UserRepository) translateDuplicate(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "email") {
		return errors.NewConflictError("Email already registered")
	}
	if strings.Contains(msg, "username") {
		return errors.NewConflictError("Username already taken")
	}
	return errors.NewConflictError("Account already exists")
}
