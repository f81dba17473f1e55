package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUsernameAvailable(t *testing.T) {
	uc := NewCheckUsernameUseCase(&mockUserRepository{}, nopLogger{})

	result, err := uc.Execute(context.Background(), CheckUsernameCommand{Username: "new_user"})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.True(t, result.Available)
	assert.Equal(t, "Username is available", result.Message)
}

func TestCheckUsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByUsernameFunc: func(context.Context, string) (bool, error) { return true, nil },
	}
	uc := NewCheckUsernameUseCase(repo, nopLogger{})

	result, err := uc.Execute(context.Background(), CheckUsernameCommand{Username: "taken"})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.False(t, result.Available)
	assert.Equal(t, "Username is taken", result.Message)
}

func TestCheckUsernameInvalidSkipsLookup(t *testing.T) {
	lookedUp := false
	repo := &mockUserRepository{
		ExistsByUsernameFunc: func(context.Context, string) (bool, error) {
			lookedUp = true
			return false, nil
		},
	}
	uc := NewCheckUsernameUseCase(repo, nopLogger{})

	tests := []struct {
		username string
		message  string
	}{
		{"ab", "Username must be at least 3 characters"},
		{"abcdefghij12345678901", "Username must be less than 20 characters"},
		{"bad name", "Username can only contain letters, numbers, and underscores"},
	}

	for _, tt := range tests {
		result, err := uc.Execute(context.Background(), CheckUsernameCommand{Username: tt.username})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.False(t, result.Available)
		assert.Equal(t, tt.message, result.Message)
	}
	assert.False(t, lookedUp)
}
