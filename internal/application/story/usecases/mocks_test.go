package usecases

import (
	"context"

	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/shared/logger"
)

type mockStoryRepository struct {
	CreateFunc  func(ctx context.Context, s *story.Story) error
	GetByIDFunc func(ctx context.Context, id uint) (*story.Story, error)
	ListFunc    func(ctx context.Context, filter story.ListFilter) ([]*story.Story, int64, error)
	UpdateFunc  func(ctx context.Context, s *story.Story) error
	DeleteFunc  func(ctx context.Context, id uint) error

	IncrementViewsFunc func(ctx context.Context, id uint) error
}

func (m *mockStoryRepository) Create(ctx context.Context, s *story.Story) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return s.SetID(1)
}

func (m *mockStoryRepository) GetByID(ctx context.Context, id uint) (*story.Story, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStoryRepository) List(ctx context.Context, filter story.ListFilter) ([]*story.Story, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockStoryRepository) Update(ctx context.Context, s *story.Story) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStoryRepository) IncrementViews(ctx context.Context, id uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return nil
}

type mockChapterRepository struct {
	CreateFunc         func(ctx context.Context, chapter *story.Chapter) error
	GetByIDFunc        func(ctx context.Context, id uint) (*story.Chapter, error)
	ListByStoryIDFunc  func(ctx context.Context, storyID uint) ([]*story.Chapter, error)
	NextNumberFunc     func(ctx context.Context, storyID uint) (uint, error)
	IncrementViewsFunc func(ctx context.Context, id uint) error
}

func (m *mockChapterRepository) Create(ctx context.Context, chapter *story.Chapter) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, chapter)
	}
	return chapter.SetID(1)
}

func (m *mockChapterRepository) GetByID(ctx context.Context, id uint) (*story.Chapter, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChapterRepository) ListByStoryID(ctx context.Context, storyID uint) ([]*story.Chapter, error) {
	if m.ListByStoryIDFunc != nil {
		return m.ListByStoryIDFunc(ctx, storyID)
	}
	return nil, nil
}

func (m *mockChapterRepository) NextNumber(ctx context.Context, storyID uint) (uint, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, storyID)
	}
	return 1, nil
}

func (m *mockChapterRepository) IncrementViews(ctx context.Context, id uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return nil
}

type mockLikeRepository struct {
	CreateFunc         func(ctx context.Context, like *story.Like) error
	DeleteFunc         func(ctx context.Context, userID, storyID uint) error
	ExistsFunc         func(ctx context.Context, userID, storyID uint) (bool, error)
	CountByStoryIDFunc func(ctx context.Context, storyID uint) (int64, error)
}

func (m *mockLikeRepository) Create(ctx context.Context, like *story.Like) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, like)
	}
	return nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, userID, storyID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, storyID)
	}
	return nil
}

func (m *mockLikeRepository) Exists(ctx context.Context, userID, storyID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, storyID)
	}
	return false, nil
}

func (m *mockLikeRepository) CountByStoryID(ctx context.Context, storyID uint) (int64, error) {
	if m.CountByStoryIDFunc != nil {
		return m.CountByStoryIDFunc(ctx, storyID)
	}
	return 0, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (n nopLogger) With(...any) logger.Interface  { return n }
func (n nopLogger) Named(string) logger.Interface { return n }
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}
