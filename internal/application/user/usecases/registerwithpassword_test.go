package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/errors"
)

func TestRegisterWithPasswordSuccess(t *testing.T) {
	var created *user.Account
	repo := &mockUserRepository{
		CreateFunc: func(_ context.Context, account *user.Account) error {
			created = account
			return account.SetID(7)
		},
	}
	mailer := &mockMailer{}
	uc := NewRegisterWithPasswordUseCase(repo, &mockPasswordHasher{}, mailer, nopLogger{})

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "Alice@Example.com",
		Username: "alice",
		Password: "LongEnough1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(7), result.Account.ID())
	assert.Equal(t, "alice@example.com", result.Account.Email().String())
	assert.Equal(t, "alice", result.Account.UsernameString())
	// Name defaults to the username when omitted.
	assert.Equal(t, "alice", result.Account.Name())
	require.NotNil(t, result.Account.PasswordHash())
	assert.Equal(t, "hashed:LongEnough1", *result.Account.PasswordHash())
	assert.Equal(t, []string{"alice@example.com"}, mailer.Sent)
}

func TestRegisterWithPasswordExplicitName(t *testing.T) {
	uc := NewRegisterWithPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, nil, nopLogger{})

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "LongEnough1",
		Name:     "Alice Lidell",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Lidell", result.Account.Name())
}

func TestRegisterWithPasswordConflicts(t *testing.T) {
	t.Run("email taken", func(t *testing.T) {
		repo := &mockUserRepository{
			ExistsByEmailFunc: func(context.Context, string) (bool, error) { return true, nil },
		}
		uc := NewRegisterWithPasswordUseCase(repo, &mockPasswordHasher{}, nil, nopLogger{})

		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "LongEnough1",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Equal(t, "Email already registered", errors.GetAppError(err).Message)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := &mockUserRepository{
			ExistsByUsernameFunc: func(context.Context, string) (bool, error) { return true, nil },
		}
		uc := NewRegisterWithPasswordUseCase(repo, &mockPasswordHasher{}, nil, nopLogger{})

		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "LongEnough1",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Equal(t, "Username already taken", errors.GetAppError(err).Message)
	})

	t.Run("write-time duplicate surfaces as conflict", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(context.Context, *user.Account) error {
				return errors.NewConflictError("Email already registered")
			},
		}
		uc := NewRegisterWithPasswordUseCase(repo, &mockPasswordHasher{}, nil, nopLogger{})

		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "LongEnough1",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestRegisterWithPasswordValidation(t *testing.T) {
	uc := NewRegisterWithPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, nil, nopLogger{})

	tests := []struct {
		name string
		cmd  RegisterWithPasswordCommand
	}{
		{"bad email", RegisterWithPasswordCommand{Email: "nope", Username: "alice", Password: "LongEnough1"}},
		{"bad username", RegisterWithPasswordCommand{Email: "a@b.com", Username: "a b", Password: "LongEnough1"}},
		{"weak password", RegisterWithPasswordCommand{Email: "a@b.com", Username: "alice", Password: "longenough1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterWithPasswordMailerFailureIsNonFatal(t *testing.T) {
	mailer := &mockMailer{
		SendWelcomeFunc: func(string, string) error {
			return assert.AnError
		},
	}
	uc := NewRegisterWithPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, mailer, nopLogger{})

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "LongEnough1",
	})
	assert.NoError(t, err)
}
