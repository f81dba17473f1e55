package models

import (
	"time"

	"github.com/mado-app/mado/internal/shared/constants"
)

// LikeModel is the gorm mapping for story likes. A user can like a story
// at most once; the unique index resolves concurrent toggles.
type LikeModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"uniqueIndex:uix_likes_user_story;not null"`
	StoryID   uint      `gorm:"uniqueIndex:uix_likes_user_story;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (LikeModel) TableName() string {
	return constants.TableLikes
}
