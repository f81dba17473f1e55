package user

import (
	"fmt"
	"time"
)

// OAuth providers supported for sign-in.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// OAuthAccount links an external provider identity to an account. The pair
// (provider, providerUserID) is unique; one account may hold links to
// several providers.
type OAuthAccount struct {
	id             uint
	userID         uint
	provider       string
	providerUserID string
	createdAt      time.Time
}

func NewOAuthAccount(userID uint, provider, providerUserID string) (*OAuthAccount, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if provider != ProviderGoogle && provider != ProviderGitHub {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	if providerUserID == "" {
		return nil, fmt.Errorf("provider user ID is required")
	}

	return &OAuthAccount{
		userID:         userID,
		provider:       provider,
		providerUserID: providerUserID,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructOAuthAccount(id, userID uint, provider, providerUserID string, createdAt time.Time) (*OAuthAccount, error) {
	if id == 0 {
		return nil, fmt.Errorf("oauth account ID cannot be zero")
	}
	return &OAuthAccount{
		id:             id,
		userID:         userID,
		provider:       provider,
		providerUserID: providerUserID,
		createdAt:      createdAt,
	}, nil
}

func (o *OAuthAccount) ID() uint               { return o.id }
func (o *OAuthAccount) UserID() uint           { return o.userID }
func (o *OAuthAccount) Provider() string       { return o.provider }
func (o *OAuthAccount) ProviderUserID() string { return o.providerUserID }
func (o *OAuthAccount) CreatedAt() time.Time   { return o.createdAt }

// SetID sets the link ID (persistence layer use only).
func (o *OAuthAccount) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("oauth account ID is already set")
	}
	o.id = id
	return nil
}

// IsValidProvider reports whether the provider name is one we support.
func IsValidProvider(provider string) bool {
	return provider == ProviderGoogle || provider == ProviderGitHub
}
