package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/config"
	"github.com/mado-app/mado/internal/shared/errors"
)

// Token types carried in the claims so a refresh token can never be used
// as an access token.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims minted at sign-in. Session claims are derived
// from the account at issuance; a login immediately following a username
// assignment therefore carries the fresh username.
type Claims struct {
	AccountID uint   `json:"account_id"`
	Username  string `json:"username,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is an access token plus the refresh token used to renew it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService signs and verifies session tokens.
type JWTService struct {
	secret     []byte
	accessExp  time.Duration
	refreshExp time.Duration
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		accessExp:  time.Duration(cfg.AccessExpMinutes) * time.Minute,
		refreshExp: time.Duration(cfg.RefreshExpDays) * 24 * time.Hour,
	}
}

// Generate mints an access/refresh token pair for the account.
func (s *JWTService) Generate(account *user.Account) (*TokenPair, error) {
	access, err := s.sign(account, TokenTypeAccess, s.accessExp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(account, TokenTypeRefresh, s.refreshExp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessExp.Seconds()),
	}, nil
}

// GenerateAccessToken mints only a new access token for the account.
func (s *JWTService) GenerateAccessToken(account *user.Account) (string, error) {
	return s.sign(account, TokenTypeAccess, s.accessExp)
}

func (s *JWTService) sign(account *user.Account, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: account.ID(),
		Username:  account.UsernameString(),
		Avatar:    account.AvatarURLString(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", account.ID()),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token and checks its signature, expiry and type.
func (s *JWTService) Verify(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewUnauthorizedError("Invalid or expired token")
	}
	if claims.TokenType != expectedType {
		return nil, errors.NewUnauthorizedError("Invalid token type")
	}
	return claims, nil
}
