package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid address is lower-cased", func(t *testing.T) {
		email, err := NewEmail("Jane.Doe@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", email.String())
		assert.Equal(t, "jane.doe", email.LocalPart())
	})

	t.Run("invalid addresses rejected", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "missing@", "@host", "a b@x.com"} {
			_, err := NewEmail(raw)
			assert.Error(t, err, "expected %q to be rejected", raw)
		}
	})
}

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"minimum length", "abc", true},
		{"maximum length", "abcdefghij1234567890", true},
		{"underscore and digits", "new_user123", true},
		{"too short", "ab", false},
		{"too long", "abcdefghij12345678901", false},
		{"space", "new user", false},
		{"dash", "new-user", false},
		{"dot", "jane.doe", false},
		{"unicode", "ユーザー名前", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUsername(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.input, u.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"meets policy", "LongEnough1", true},
		{"exactly eight", "Abcdef12", true},
		{"too short", "short1A", false},
		{"no uppercase", "longenough1", false},
		{"no lowercase", "LONGENOUGH1", false},
		{"no digit", "LongEnough", false},
		{"symbols not required", "Passw0rd1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPassword(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewName(t *testing.T) {
	name, err := NewName("  Demo Author  ")
	require.NoError(t, err)
	assert.Equal(t, "Demo Author", name.String())

	_, err = NewName("   ")
	assert.Error(t, err)
}
