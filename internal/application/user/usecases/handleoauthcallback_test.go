package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/shared/errors"
)

// callbackFixture wires the callback use case against an in-memory account
// whose username assignment can be made to collide.
type callbackFixture struct {
	userRepo  *mockUserRepository
	oauthRepo *mockOAuthAccountRepository
	google    *mockOAuthClient
	taken     map[string]bool
	assigned  string
	creates   int
}

func newCallbackFixture(t *testing.T, email string, existing *user.Account) *callbackFixture {
	t.Helper()
	f := &callbackFixture{taken: map[string]bool{}}

	accountByID := func() *user.Account {
		emailVO, err := vo.NewEmail(email)
		require.NoError(t, err)
		var usernameVO *vo.Username
		if f.assigned != "" {
			usernameVO, err = vo.NewUsername(f.assigned)
			require.NoError(t, err)
		}
		account, err := user.ReconstructAccount(11, emailVO, usernameVO, "Jane", nil, nil, nil, time.Now(), time.Now())
		require.NoError(t, err)
		return account
	}

	f.userRepo = &mockUserRepository{
		GetByEmailFunc: func(context.Context, string) (*user.Account, error) {
			return existing, nil
		},
		CreateFunc: func(_ context.Context, account *user.Account) error {
			f.creates++
			return account.SetID(11)
		},
		GetByIDFunc: func(context.Context, uint) (*user.Account, error) {
			return accountByID(), nil
		},
		AssignUsernameFunc: func(_ context.Context, _ uint, username string, _ *string) error {
			if f.taken[username] {
				return fmt.Errorf("UNIQUE constraint failed: users.username")
			}
			f.assigned = username
			return nil
		},
	}
	f.oauthRepo = &mockOAuthAccountRepository{}
	f.google = &mockOAuthClient{
		ExchangeCodeFunc: func(context.Context, string) (*ProviderIdentity, error) {
			return &ProviderIdentity{
				ProviderUserID: "google-123",
				Email:          email,
				Name:           "Jane",
				AvatarURL:      "https://example.com/jane.png",
			}, nil
		},
	}
	return f
}

func (f *callbackFixture) useCase() *HandleOAuthCallbackUseCase {
	return NewHandleOAuthCallbackUseCase(
		f.userRepo,
		f.oauthRepo,
		f.google,
		&mockOAuthClient{},
		&mockStateVerifier{},
		&mockTokenService{},
		nil,
		nopLogger{},
	)
}

func callbackCommand() HandleOAuthCallbackCommand {
	return HandleOAuthCallbackCommand{Provider: user.ProviderGoogle, Code: "code", State: "state"}
}

func TestHandleOAuthCallbackNewUserSynthesizesUsername(t *testing.T) {
	f := newCallbackFixture(t, "jane.doe@example.com", nil)

	result, err := f.useCase().Execute(context.Background(), callbackCommand())
	require.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, 1, f.creates)
	// Dots in the local part are stripped, not replaced.
	assert.Equal(t, "janedoe", result.Account.UsernameString())
	assert.Equal(t, "access", result.AccessToken)
}

func TestHandleOAuthCallbackNumberedSuffixes(t *testing.T) {
	f := newCallbackFixture(t, "alice@example.com", nil)
	f.taken["alice"] = true
	f.taken["alice1"] = true

	result, err := f.useCase().Execute(context.Background(), callbackCommand())
	require.NoError(t, err)
	assert.Equal(t, "alice2", result.Account.UsernameString())
}

func TestHandleOAuthCallbackRandomFallback(t *testing.T) {
	f := newCallbackFixture(t, "alice@example.com", nil)
	f.taken["alice"] = true
	for i := 1; i <= 100; i++ {
		f.taken[fmt.Sprintf("alice%d", i)] = true
	}

	result, err := f.useCase().Execute(context.Background(), callbackCommand())
	require.NoError(t, err)

	got := result.Account.UsernameString()
	assert.True(t, strings.HasPrefix(got, "alice"), "got %q", got)
	assert.False(t, f.taken[got])
	assert.Len(t, got, len("alice")+6)
}

func TestHandleOAuthCallbackExistingLinkLogsIn(t *testing.T) {
	f := newCallbackFixture(t, "jane.doe@example.com", nil)
	f.assigned = "janedoe"

	link, err := user.NewOAuthAccount(11, user.ProviderGoogle, "google-123")
	require.NoError(t, err)
	f.oauthRepo.GetByProviderFunc = func(context.Context, string, string) (*user.OAuthAccount, error) {
		return link, nil
	}

	result, err := f.useCase().Execute(context.Background(), callbackCommand())
	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, 0, f.creates)
	assert.Equal(t, "janedoe", result.Account.UsernameString())
}

func TestHandleOAuthCallbackLinksExistingEmailAccount(t *testing.T) {
	emailVO, err := vo.NewEmail("jane.doe@example.com")
	require.NoError(t, err)
	usernameVO, err := vo.NewUsername("janedoe")
	require.NoError(t, err)
	hash := "hashed:LongEnough1"
	existing, err := user.ReconstructAccount(11, emailVO, usernameVO, "Jane", &hash, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)

	f := newCallbackFixture(t, "jane.doe@example.com", existing)

	var linked *user.OAuthAccount
	f.oauthRepo.CreateFunc = func(_ context.Context, link *user.OAuthAccount) error {
		linked = link
		return nil
	}

	result, err := f.useCase().Execute(context.Background(), callbackCommand())
	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, 0, f.creates, "account with this email must be reused, not recreated")
	require.NotNil(t, linked)
	assert.Equal(t, uint(11), linked.UserID())
	assert.Equal(t, "google-123", linked.ProviderUserID())
	// Existing username is kept; no synthesis happens.
	assert.Equal(t, "janedoe", result.Account.UsernameString())
}

func TestHandleOAuthCallbackAssignmentFailureFailsClosed(t *testing.T) {
	f := newCallbackFixture(t, "jane.doe@example.com", nil)
	f.userRepo.AssignUsernameFunc = func(context.Context, uint, string, *string) error {
		return fmt.Errorf("connection reset")
	}

	_, err := f.useCase().Execute(context.Background(), callbackCommand())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeLinkingFailed, appErr.Type)
}

func TestHandleOAuthCallbackInvalidState(t *testing.T) {
	f := newCallbackFixture(t, "jane.doe@example.com", nil)
	uc := NewHandleOAuthCallbackUseCase(
		f.userRepo,
		f.oauthRepo,
		f.google,
		&mockOAuthClient{},
		&mockStateVerifier{RedeemFunc: func(string) bool { return false }},
		&mockTokenService{},
		nil,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), callbackCommand())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestHandleOAuthCallbackUnsupportedProvider(t *testing.T) {
	f := newCallbackFixture(t, "jane.doe@example.com", nil)

	cmd := callbackCommand()
	cmd.Provider = "gitlab"
	_, err := f.useCase().Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSynthesizeUsernameBase(t *testing.T) {
	tests := []struct {
		localPart string
		want      string
	}{
		{"jane.doe", "janedoe"},
		{"Jane.Doe", "janedoe"},
		{"alice", "alice"},
		{"a.b", "userab"},
		{"o'brien+news", "obriennews"},
		{"under_score", "under_score"},
		{"averyveryverylongaddresspart", "averyveryverylongadd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, synthesizeUsernameBase(tt.localPart), "local part %q", tt.localPart)
	}
}

func TestUsernameCandidateTruncatesForSuffix(t *testing.T) {
	base := "averyveryverylongadd" // already at the cap
	c := usernameCandidate(base, 1)
	assert.Equal(t, "averyveryverylongad1", c)
	assert.LessOrEqual(t, len(c), vo.UsernameMaxLength)

	c = usernameCandidate(base, 100)
	assert.Equal(t, "averyveryverylong100", c)

	c = usernameCandidate(base, 101)
	assert.Len(t, c, vo.UsernameMaxLength)
	assert.True(t, strings.HasPrefix(c, "averyveryveryl"))
}
