package usecases

import (
	"context"

	"github.com/mado-app/mado/internal/domain/user"
)

// TokenPair is an access/refresh token pair minted for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService mints session tokens. Claims are derived from the account at
// issuance, so tokens generated after a username assignment carry the fresh
// username.
type TokenService interface {
	Generate(account *user.Account) (*TokenPair, error)
	GenerateAccessToken(account *user.Account) (string, error)
}

// RefreshTokenVerifier checks a refresh token and returns the account it
// was minted for.
type RefreshTokenVerifier interface {
	VerifyRefreshToken(token string) (accountID uint, err error)
}

// ProviderIdentity is the normalized identity an OAuth provider returns
// after a successful code exchange.
type ProviderIdentity struct {
	ProviderUserID string
	Email          string
	Name           string
	AvatarURL      string
}

// OAuthClient abstracts one external identity provider.
type OAuthClient interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*ProviderIdentity, error)
}

// StateVerifier issues and redeems single-use OAuth state tokens.
type StateVerifier interface {
	Issue() (string, error)
	Redeem(state string) bool
}

// WelcomeMailer sends the post-registration welcome email.
type WelcomeMailer interface {
	SendWelcome(to, name string) error
}
