package models

import (
	"time"

	"github.com/mado-app/mado/internal/shared/constants"
)

// StoryModel is the gorm mapping for stories. Views and LikeCount are
// denormalized counters maintained by the repositories.
type StoryModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	AuthorID    uint      `gorm:"index;not null"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:2000"`
	Genre       string    `gorm:"index;size:50;not null"`
	Language    string    `gorm:"index;size:20;not null"`
	Status      string    `gorm:"size:20;not null;default:ongoing"`
	CoverURL    *string   `gorm:"size:500"`
	Published   bool      `gorm:"index;not null;default:false"`
	Mature      bool      `gorm:"not null;default:false"`
	Views       uint64    `gorm:"not null;default:0"`
	LikeCount   uint64    `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (StoryModel) TableName() string {
	return constants.TableStories
}
