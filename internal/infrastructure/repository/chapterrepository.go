package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/infrastructure/persistence/mappers"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
)

// ChapterRepository is the gorm implementation of story.ChapterRepository.
type ChapterRepository struct {
	db     *gorm.DB
	mapper *mappers.ChapterMapper
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{
		db:     db,
		mapper: mappers.NewChapterMapper(),
	}
}

func (r *ChapterRepository) Create(ctx context.Context, chapter *story.Chapter) error {
	model := r.mapper.ToModel(chapter)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create chapter: %w", err)
	}
	return chapter.SetID(model.ID)
}

func (r *ChapterRepository) GetByID(ctx context.Context, id uint) (*story.Chapter, error) {
	var model models.ChapterModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ChapterRepository) ListByStoryID(ctx context.Context, storyID uint) ([]*story.Chapter, error) {
	var rows []models.ChapterModel
	err := r.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	chapters := make([]*story.Chapter, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}
	return chapters, nil
}

// NextNumber returns the number the story's next chapter should take.
func (r *ChapterRepository) NextNumber(ctx context.Context, storyID uint) (uint, error) {
	var max *uint
	err := r.db.WithContext(ctx).
		Model(&models.ChapterModel{}).
		Where("story_id = ?", storyID).
		Select("MAX(number)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get next chapter number: %w", err)
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// IncrementViews bumps the chapter view counter in a single update so
// concurrent readers never lose counts.
func (r *ChapterRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.ChapterModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment chapter views: %w", err)
	}
	return nil
}
