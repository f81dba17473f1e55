package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/shared/config"
)

func testAccount(t *testing.T) *user.Account {
	t.Helper()
	email, err := vo.NewEmail("jane@example.com")
	require.NoError(t, err)
	username, err := vo.NewUsername("jane")
	require.NoError(t, err)
	account, err := user.ReconstructAccount(42, email, username, "Jane", nil, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return account
}

func TestJWTServiceGenerateAndVerify(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpMinutes: 15, RefreshExpDays: 7})
	account := testAccount(t)

	pair, err := svc.Generate(account)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTServiceRejectsWrongType(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpMinutes: 15, RefreshExpDays: 7})
	pair, err := svc.Generate(testAccount(t))
	require.NoError(t, err)

	_, err = svc.Verify(pair.RefreshToken, TokenTypeAccess)
	assert.Error(t, err)
	_, err = svc.Verify(pair.AccessToken, TokenTypeRefresh)
	assert.Error(t, err)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpMinutes: 15, RefreshExpDays: 7})
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpMinutes: 15, RefreshExpDays: 7})

	pair, err := svc.Generate(testAccount(t))
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken, TokenTypeAccess)
	assert.Error(t, err)
}
