package token_test

import (
	"testing"
	"time"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())

	access, err := manager.GenerateAccessToken("42", "a@b.co")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.MemberID)
	assert.Equal(t, "a@b.co", claims.Email)
	assert.Equal(t, token.ACCESS, claims.TokenType)
	assert.Equal(t, "42", claims.Subject)

	refresh, err := manager.GenerateRefreshToken("42", "a@b.co")
	require.NoError(t, err)

	claims, err = manager.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, token.REFRESH, claims.TokenType)
}

func TestJWTManager_Expired(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.JWT.Expiry = -time.Minute
	manager := token.NewJWTManager(cfg)

	expired, err := manager.GenerateAccessToken("42", "a@b.co")
	require.NoError(t, err)

	_, err = manager.ValidateToken(expired)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestJWTManager_WrongSecretOrIssuer(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())

	otherCfg := testutil.NewTestConfig()
	otherCfg.JWT.Secret = "another-jwt-secret-key-that-is-at-least-32-chars"
	other := token.NewJWTManager(otherCfg)

	foreign, err := other.GenerateAccessToken("42", "a@b.co")
	require.NoError(t, err)
	_, err = manager.ValidateToken(foreign)
	assert.ErrorIs(t, err, token.ErrInvalidToken)

	issuerCfg := testutil.NewTestConfig()
	issuerCfg.App.Name = "someone-else"
	sameSecretOtherIssuer := token.NewJWTManager(issuerCfg)

	foreign, err = sameSecretOtherIssuer.GenerateAccessToken("42", "a@b.co")
	require.NoError(t, err)
	_, err = manager.ValidateToken(foreign)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestJWTManager_InvalidClaims(t *testing.T) {
	cfg := testutil.NewTestConfig()
	manager := token.NewJWTManager(cfg)

	sign := func(claims token.Claims) string {
		t.Helper()
		now := time.Now()
		claims.Issuer = cfg.App.Name
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Hour))
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
		require.NoError(t, err)
		return signed
	}

	testCases := []struct {
		name   string
		claims token.Claims
	}{
		{name: "missing member id", claims: token.Claims{TokenType: token.ACCESS}},
		{name: "subject mismatch", claims: token.Claims{MemberID: "1", TokenType: token.ACCESS, RegisteredClaims: jwt.RegisteredClaims{Subject: "2"}}},
		{name: "unknown token type", claims: token.Claims{MemberID: "1", TokenType: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manager.ValidateToken(sign(tc.claims))

			assert.ErrorIs(t, err, token.ErrInvalidClaims)
		})
	}
}

func TestJWTManager_UniqueTokenIDs(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())

	first, err := manager.GenerateAccessToken("42", "a@b.co")
	require.NoError(t, err)
	second, err := manager.GenerateAccessToken("42", "a@b.co")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
