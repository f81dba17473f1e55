package http

import (
	"context"

	"github.com/mado-app/mado/internal/application/user/usecases"
	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/infrastructure/auth"
)

// jwtServiceAdapter adapts auth.JWTService to the usecases.TokenService and
// usecases.RefreshTokenVerifier interfaces.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(account *user.Account) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(account)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) VerifyRefreshToken(token string) (uint, error) {
	claims, err := a.JWTService.Verify(token, auth.TokenTypeRefresh)
	if err != nil {
		return 0, err
	}
	return claims.AccountID, nil
}

// oauthClientAdapter adapts an auth.OAuthProvider to usecases.OAuthClient.
type oauthClientAdapter struct {
	provider auth.OAuthProvider
}

func (a *oauthClientAdapter) AuthURL(state string) string {
	return a.provider.AuthURL(state)
}

func (a *oauthClientAdapter) ExchangeCode(ctx context.Context, code string) (*usecases.ProviderIdentity, error) {
	identity, err := a.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &usecases.ProviderIdentity{
		ProviderUserID: identity.ProviderUserID,
		Email:          identity.Email,
		Name:           identity.Name,
		AvatarURL:      identity.AvatarURL,
	}, nil
}
