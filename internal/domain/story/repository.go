package story

import "context"

// Repository persists stories. Lookups return (nil, nil) when nothing
// matches.
type Repository interface {
	Create(ctx context.Context, story *Story) error
	GetByID(ctx context.Context, id uint) (*Story, error)
	List(ctx context.Context, filter ListFilter) ([]*Story, int64, error)
	Update(ctx context.Context, story *Story) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

// ChapterRepository persists chapters.
type ChapterRepository interface {
	Create(ctx context.Context, chapter *Chapter) error
	GetByID(ctx context.Context, id uint) (*Chapter, error)
	ListByStoryID(ctx context.Context, storyID uint) ([]*Chapter, error)
	NextNumber(ctx context.Context, storyID uint) (uint, error)
	IncrementViews(ctx context.Context, id uint) error
}

// LikeRepository persists story likes and keeps the story's denormalized
// like count in step.
type LikeRepository interface {
	Create(ctx context.Context, like *Like) error
	Delete(ctx context.Context, userID, storyID uint) error
	Exists(ctx context.Context, userID, storyID uint) (bool, error)
	CountByStoryID(ctx context.Context, storyID uint) (int64, error)
}
