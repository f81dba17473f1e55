package auth

import "context"

// ProviderUser is the normalized identity returned by an OAuth provider
// after a successful code exchange.
type ProviderUser struct {
	ProviderUserID string
	Email          string
	Name           string
	AvatarURL      string
}

// OAuthProvider abstracts an external identity provider.
type OAuthProvider interface {
	Name() string
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*ProviderUser, error)
}
