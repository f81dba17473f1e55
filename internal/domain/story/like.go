package story

import (
	"fmt"
	"time"
)

// Like records that a user likes a story. The pair (userID, storyID) is
// unique; toggling removes or recreates the row.
type Like struct {
	id        uint
	userID    uint
	storyID   uint
	createdAt time.Time
}

func NewLike(userID, storyID uint) (*Like, error) {
	if userID == 0 || storyID == 0 {
		return nil, fmt.Errorf("user ID and story ID are required")
	}
	return &Like{
		userID:    userID,
		storyID:   storyID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructLike(id, userID, storyID uint, createdAt time.Time) *Like {
	return &Like{id: id, userID: userID, storyID: storyID, createdAt: createdAt}
}

func (l *Like) ID() uint             { return l.id }
func (l *Like) UserID() uint         { return l.userID }
func (l *Like) StoryID() uint        { return l.storyID }
func (l *Like) CreatedAt() time.Time { return l.createdAt }
