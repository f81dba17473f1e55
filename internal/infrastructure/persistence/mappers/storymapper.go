package mappers

import (
	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
)

// StoryMapper converts between story entities and their gorm models.
type StoryMapper struct{}

func NewStoryMapper() *StoryMapper {
	return &StoryMapper{}
}

func (m *StoryMapper) ToModel(s *story.Story) *models.StoryModel {
	return &models.StoryModel{
		ID:          s.ID(),
		AuthorID:    s.AuthorID(),
		Title:       s.Title(),
		Description: s.Description(),
		Genre:       s.Genre(),
		Language:    s.Language(),
		Status:      s.Status(),
		CoverURL:    s.CoverURL(),
		Published:   s.IsPublished(),
		Mature:      s.IsMature(),
		Views:       s.Views(),
		LikeCount:   s.LikeCount(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (m *StoryMapper) ToDomain(model *models.StoryModel) (*story.Story, error) {
	return story.ReconstructStory(
		model.ID,
		model.AuthorID,
		model.Title,
		model.Description,
		model.Genre,
		model.Language,
		model.Status,
		model.CoverURL,
		model.Published,
		model.Mature,
		model.Views,
		model.LikeCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ChapterMapper converts between chapters and their gorm models.
type ChapterMapper struct{}

func NewChapterMapper() *ChapterMapper {
	return &ChapterMapper{}
}

func (m *ChapterMapper) ToModel(c *story.Chapter) *models.ChapterModel {
	return &models.ChapterModel{
		ID:        c.ID(),
		StoryID:   c.StoryID(),
		Number:    c.Number(),
		Title:     c.Title(),
		Content:   c.Content(),
		Views:     c.Views(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *ChapterMapper) ToDomain(model *models.ChapterModel) (*story.Chapter, error) {
	return story.ReconstructChapter(
		model.ID,
		model.StoryID,
		model.Number,
		model.Title,
		model.Content,
		model.Views,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
