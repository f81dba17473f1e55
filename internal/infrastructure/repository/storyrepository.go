package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/infrastructure/persistence/mappers"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
)

// StoryRepository is the gorm implementation of story.Repository.
type StoryRepository struct {
	db     *gorm.DB
	mapper *mappers.StoryMapper
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{
		db:     db,
		mapper: mappers.NewStoryMapper(),
	}
}

func (r *StoryRepository) Create(ctx context.Context, s *story.Story) error {
	model := r.mapper.ToModel(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create story: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *StoryRepository) GetByID(ctx context.Context, id uint) (*story.Story, error) {
	var model models.StoryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// List returns a filtered, sorted page of stories plus the total match
// count. Unpublished stories are included only for their own author.
func (r *StoryRepository) List(ctx context.Context, filter story.ListFilter) ([]*story.Story, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.StoryModel{})

	if filter.ViewerID != 0 {
		query = query.Where("published = ? OR author_id = ?", true, filter.ViewerID)
	} else {
		query = query.Where("published = ?", true)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		// Both sides go through LOWER-style folding so the comparison is
		// symmetric. Ethiopic scripts are caseless and pass through as is.
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stories: %w", err)
	}

	var rows []models.StoryModel
	err := query.Order(orderClause(filter.Sort)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stories: %w", err)
	}

	stories := make([]*story.Story, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		stories = append(stories, s)
	}
	return stories, total, nil
}

func (r *StoryRepository) Update(ctx context.Context, s *story.Story) error {
	model := r.mapper.ToModel(s)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update story: %w", err)
	}
	return nil
}

// IncrementViews bumps the story view counter in a single update.
func (r *StoryRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.StoryModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment story views: %w", err)
	}
	return nil
}

func (r *StoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.StoryModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	return nil
}

func orderClause(sort string) string {
	switch sort {
	case story.SortPopular:
		return "views DESC, id DESC"
	case story.SortRecent:
		return "created_at DESC, id DESC"
	case story.SortLikes:
		return "like_count DESC, id DESC"
	default:
		return "updated_at DESC, id DESC"
	}
}
