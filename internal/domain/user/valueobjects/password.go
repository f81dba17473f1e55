package valueobjects

import (
	"unicode"

	"github.com/mado-app/mado/internal/shared/errors"
)

// Password is a validated plaintext password awaiting hashing. It is never
// persisted; only the derived hash is stored.
type Password struct {
	value string
}

func NewPassword(plain string) (*Password, error) {
	if len(plain) < 8 {
		return nil, errors.NewValidationError("Password must be at least 8 characters")
	}
	// bcrypt truncates input beyond 72 bytes
	if len(plain) > 72 {
		return nil, errors.NewValidationError("Password must not exceed 72 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range plain {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return nil, errors.NewValidationError("Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}

	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}
