package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
	"github.com/mado-app/mado/internal/shared/constants"
	"github.com/mado-app/mado/internal/shared/errors"
)

// LikeRepository is the gorm implementation of story.LikeRepository. Every
// like mutation updates the story's denormalized like_count in the same
// transaction.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, like *story.Like) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.LikeModel{
			UserID:    like.UserID(),
			StoryID:   like.StoryID(),
			CreatedAt: like.CreatedAt(),
		}
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				// Lost a race with an identical like; the end state is
				// the one the caller wanted.
				return nil
			}
			return fmt.Errorf("failed to create like: %w", err)
		}
		return tx.Model(&models.StoryModel{}).
			Where("id = ?", like.StoryID()).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}

func (r *LikeRepository) Delete(ctx context.Context, userID, storyID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND story_id = ?", userID, storyID).
			Delete(&models.LikeModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete like: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.StoryModel{}).
			Where("id = ? AND like_count > 0", storyID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}

func (r *LikeRepository) Exists(ctx context.Context, userID, storyID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LikeModel{}).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return count > 0, nil
}

func (r *LikeRepository) CountByStoryID(ctx context.Context, storyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(constants.TableLikes).
		Where("story_id = ?", storyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
