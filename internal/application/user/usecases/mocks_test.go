package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, account *user.Account) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.Account, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.Account, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.Account, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	UpdateFunc           func(ctx context.Context, account *user.Account) error
	AssignUsernameFunc   func(ctx context.Context, id uint, username string, avatarURL *string) error
}

func (m *mockUserRepository) Create(ctx context.Context, account *user.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, account *user.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

func (m *mockUserRepository) AssignUsername(ctx context.Context, id uint, username string, avatarURL *string) error {
	if m.AssignUsernameFunc != nil {
		return m.AssignUsernameFunc(ctx, id, username, avatarURL)
	}
	return nil
}

type mockOAuthAccountRepository struct {
	CreateFunc        func(ctx context.Context, link *user.OAuthAccount) error
	GetByProviderFunc func(ctx context.Context, provider, providerUserID string) (*user.OAuthAccount, error)
	ListByUserIDFunc  func(ctx context.Context, userID uint) ([]*user.OAuthAccount, error)
}

func (m *mockOAuthAccountRepository) Create(ctx context.Context, link *user.OAuthAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, link)
	}
	return nil
}

func (m *mockOAuthAccountRepository) GetByProvider(ctx context.Context, provider, providerUserID string) (*user.OAuthAccount, error) {
	if m.GetByProviderFunc != nil {
		return m.GetByProviderFunc(ctx, provider, providerUserID)
	}
	return nil, nil
}

func (m *mockOAuthAccountRepository) ListByUserID(ctx context.Context, userID uint) ([]*user.OAuthAccount, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if "hashed:"+password == hash {
		return nil
	}
	return fmt.Errorf("password mismatch")
}

type mockTokenService struct {
	GenerateFunc            func(account *user.Account) (*TokenPair, error)
	GenerateAccessTokenFunc func(account *user.Account) (string, error)
}

func (m *mockTokenService) Generate(account *user.Account) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(account)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) GenerateAccessToken(account *user.Account) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(account)
	}
	return "access", nil
}

type mockOAuthClient struct {
	AuthURLFunc      func(state string) string
	ExchangeCodeFunc func(ctx context.Context, code string) (*ProviderIdentity, error)
}

func (m *mockOAuthClient) AuthURL(state string) string {
	if m.AuthURLFunc != nil {
		return m.AuthURLFunc(state)
	}
	return "https://provider.example/authorize?state=" + state
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code string) (*ProviderIdentity, error) {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code)
	}
	return nil, nil
}

type mockStateVerifier struct {
	IssueFunc  func() (string, error)
	RedeemFunc func(state string) bool
}

func (m *mockStateVerifier) Issue() (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc()
	}
	return "state", nil
}

func (m *mockStateVerifier) Redeem(state string) bool {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(state)
	}
	return true
}

type mockMailer struct {
	SendWelcomeFunc func(to, name string) error
	Sent            []string
}

func (m *mockMailer) SendWelcome(to, name string) error {
	m.Sent = append(m.Sent, to)
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(to, name)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (n nopLogger) With(...any) logger.Interface  { return n }
func (n nopLogger) Named(string) logger.Interface { return n }
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}
