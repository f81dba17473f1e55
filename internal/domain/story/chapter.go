package story

import (
	"fmt"
	"strings"
	"time"

	"github.com/mado-app/mado/internal/shared/errors"
)

const ChapterTitleMaxLength = 100

// Chapter is a single installment of a story. Content is stored as the
// author's markdown; rendering to HTML happens at read time. Number is the
// 1-based position within the story and is unique per story.
type Chapter struct {
	id        uint
	storyID   uint
	number    uint
	title     string
	content   string
	views     uint64
	createdAt time.Time
	updatedAt time.Time
}

func NewChapter(storyID, number uint, title, content string) (*Chapter, error) {
	if storyID == 0 {
		return nil, fmt.Errorf("story ID cannot be zero")
	}
	if number == 0 {
		return nil, fmt.Errorf("chapter number must be positive")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.NewValidationError("Chapter title is required")
	}
	if len([]rune(title)) > ChapterTitleMaxLength {
		return nil, errors.NewValidationError("Chapter title must be less than 100 characters")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.NewValidationError("Chapter content is required")
	}

	now := time.Now()
	return &Chapter{
		storyID:   storyID,
		number:    number,
		title:     title,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructChapter(id, storyID, number uint, title, content string, views uint64, createdAt, updatedAt time.Time) (*Chapter, error) {
	if id == 0 {
		return nil, fmt.Errorf("chapter ID cannot be zero")
	}
	return &Chapter{
		id:        id,
		storyID:   storyID,
		number:    number,
		title:     title,
		content:   content,
		views:     views,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Chapter) ID() uint             { return c.id }
func (c *Chapter) StoryID() uint        { return c.storyID }
func (c *Chapter) Number() uint         { return c.number }
func (c *Chapter) Title() string        { return c.title }
func (c *Chapter) Content() string      { return c.content }
func (c *Chapter) Views() uint64        { return c.views }
func (c *Chapter) CreatedAt() time.Time { return c.createdAt }
func (c *Chapter) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the chapter ID (persistence layer use only).
func (c *Chapter) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("chapter ID is already set")
	}
	c.id = id
	return nil
}
