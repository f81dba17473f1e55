package models

import (
	"time"

	"github.com/mado-app/mado/internal/shared/constants"
)

// ChapterModel is the gorm mapping for chapters. Number is the 1-based
// position within the story, unique per story.
type ChapterModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	StoryID   uint      `gorm:"uniqueIndex:uix_chapters_story_number;not null"`
	Number    uint      `gorm:"uniqueIndex:uix_chapters_story_number;not null"`
	Title     string    `gorm:"size:100;not null"`
	Content   string    `gorm:"type:text;not null"`
	Views     uint64    `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChapterModel) TableName() string {
	return constants.TableChapters
}
