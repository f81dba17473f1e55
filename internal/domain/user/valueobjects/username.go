package valueobjects

import (
	"github.com/mado-app/mado/internal/shared/errors"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

// Username is a validated username: 3-20 characters, ASCII letters, digits
// and underscore only. Once assigned to an account it never changes.
type Username struct {
	value string
}

func NewUsername(raw string) (*Username, error) {
	if len(raw) < UsernameMinLength {
		return nil, errors.NewValidationError("Username must be at least 3 characters")
	}
	if len(raw) > UsernameMaxLength {
		return nil, errors.NewValidationError("Username must be less than 20 characters")
	}
	for _, c := range raw {
		if !isUsernameChar(c) {
			return nil, errors.NewValidationError("Username can only contain letters, numbers, and underscores")
		}
	}

	return &Username{value: raw}, nil
}

func isUsernameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}

func (u *Username) String() string {
	return u.value
}

func (u *Username) Equals(other *Username) bool {
	return other != nil && u.value == other.value
}
