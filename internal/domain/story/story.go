package story

import (
	"fmt"
	"strings"
	"time"

	"github.com/mado-app/mado/internal/shared/constants"
	"github.com/mado-app/mado/internal/shared/errors"
)

// Publication status of a story.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusOnHold    = "on_hold"
)

const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMinLength = 20
	DescriptionMaxLength = 1000
)

// Story is a serialized work of fiction. Chapters hang off it; readers
// browse published stories, authors additionally see their own drafts.
type Story struct {
	id          uint
	authorID    uint
	title       string
	description string
	genre       string
	language    string
	status      string
	coverURL    *string
	published   bool
	mature      bool
	views       uint64
	likeCount   uint64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStory(authorID uint, title, description, genre, language string) (*Story, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID cannot be zero")
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateDetails(title, description, genre, language); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Story{
		authorID:    authorID,
		title:       title,
		description: strings.TrimSpace(description),
		genre:       genre,
		language:    language,
		status:      StatusOngoing,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructStory(
	id, authorID uint,
	title, description, genre, language, status string,
	coverURL *string,
	published, mature bool,
	views, likeCount uint64,
	createdAt, updatedAt time.Time,
) (*Story, error) {
	if id == 0 {
		return nil, fmt.Errorf("story ID cannot be zero")
	}
	return &Story{
		id:          id,
		authorID:    authorID,
		title:       title,
		description: description,
		genre:       genre,
		language:    language,
		status:      status,
		coverURL:    coverURL,
		published:   published,
		mature:      mature,
		views:       views,
		likeCount:   likeCount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Story) ID() uint             { return s.id }
func (s *Story) AuthorID() uint       { return s.authorID }
func (s *Story) Title() string        { return s.title }
func (s *Story) Description() string  { return s.description }
func (s *Story) Genre() string        { return s.genre }
func (s *Story) Language() string     { return s.language }
func (s *Story) Status() string       { return s.status }
func (s *Story) CoverURL() *string    { return s.coverURL }
func (s *Story) IsPublished() bool    { return s.published }
func (s *Story) IsMature() bool       { return s.mature }
func (s *Story) Views() uint64        { return s.views }
func (s *Story) LikeCount() uint64    { return s.likeCount }
func (s *Story) CreatedAt() time.Time { return s.createdAt }
func (s *Story) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the story ID (persistence layer use only).
func (s *Story) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("story ID is already set")
	}
	s.id = id
	return nil
}

// IsVisibleTo reports whether the story may be read by the given viewer.
// Drafts are visible to their author only; viewerID zero means anonymous.
func (s *Story) IsVisibleTo(viewerID uint) bool {
	return s.published || (viewerID != 0 && viewerID == s.authorID)
}

// Publish makes the story publicly visible.
func (s *Story) Publish() {
	s.published = true
	s.updatedAt = time.Now()
}

// SetMature flags the story as containing mature content.
func (s *Story) SetMature(mature bool) {
	s.mature = mature
	s.updatedAt = time.Now()
}

// SetStatus updates the publication status.
func (s *Story) SetStatus(status string) error {
	switch status {
	case StatusOngoing, StatusCompleted, StatusOnHold:
		s.status = status
		s.updatedAt = time.Now()
		return nil
	}
	return errors.NewValidationError("Invalid status")
}

// SetCoverURL replaces the cover image URL (nil clears).
func (s *Story) SetCoverURL(url *string) {
	s.coverURL = url
	s.updatedAt = time.Now()
}

// UpdateDetails applies edits to the mutable story fields.
func (s *Story) UpdateDetails(title, description, genre, language string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateDetails(title, description, genre, language); err != nil {
		return err
	}

	s.title = title
	s.description = description
	s.genre = genre
	s.language = language
	s.updatedAt = time.Now()
	return nil
}

func validateDetails(title, description, genre, language string) error {
	if len([]rune(title)) < TitleMinLength {
		return errors.NewValidationError("Title must be at least 3 characters")
	}
	if len([]rune(title)) > TitleMaxLength {
		return errors.NewValidationError("Title must be less than 100 characters")
	}
	if len([]rune(description)) < DescriptionMinLength {
		return errors.NewValidationError("Description must be at least 20 characters")
	}
	if len([]rune(description)) > DescriptionMaxLength {
		return errors.NewValidationError("Description must be less than 1000 characters")
	}
	if !constants.IsValidGenre(genre) {
		return errors.NewValidationError("Invalid genre")
	}
	if !constants.IsValidLanguage(language) {
		return errors.NewValidationError("Invalid language")
	}
	return nil
}
