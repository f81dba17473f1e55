package valueobjects

import (
	"net/mail"
	"strings"

	"github.com/mado-app/mado/internal/shared/errors"
)

// Email is a validated, normalized (lower-cased) email address.
type Email struct {
	value string
}

func NewEmail(raw string) (*Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.NewValidationError("Email is required")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return nil, errors.NewValidationError("Invalid email address")
	}

	return &Email{value: strings.ToLower(trimmed)}, nil
}

func (e *Email) String() string {
	return e.value
}

// LocalPart returns the part of the address before the '@'.
func (e *Email) LocalPart() string {
	at := strings.LastIndex(e.value, "@")
	if at < 0 {
		return e.value
	}
	return e.value[:at]
}

func (e *Email) Equals(other *Email) bool {
	return other != nil && e.value == other.value
}
