package valueobjects

import (
	"strings"

	"github.com/mado-app/mado/internal/shared/errors"
)

const NameMaxLength = 50

// Name is a display name: non-empty, at most 50 characters.
type Name struct {
	value string
}

func NewName(raw string) (*Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.NewValidationError("Name is required")
	}
	if len([]rune(trimmed)) > NameMaxLength {
		return nil, errors.NewValidationError("Name must be less than 50 characters")
	}
	return &Name{value: trimmed}, nil
}

func (n *Name) String() string {
	return n.value
}
