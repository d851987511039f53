package testutil

import (
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/token"
)

// MockTokenManager stubs token.Manager. Unset funcs return fixed tokens and reject every token on validation.
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(memberID, email string) (string, error)
	GenerateRefreshTokenFunc func(memberID, email string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

var _ token.Manager = (*MockTokenManager)(nil)

func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}

// Issuing makes ValidateToken accept any token as the given member's token of tokenType
func (m *MockTokenManager) Issuing(memberID, email, tokenType string) *MockTokenManager {
	m.ValidateTokenFunc = func(string) (*token.Claims, error) {
		return &token.Claims{MemberID: memberID, Email: email, TokenType: tokenType}, nil
	}
	return m
}

func (m *MockTokenManager) GenerateAccessToken(memberID, email string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(memberID, email)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(memberID, email string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(memberID, email)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, token.ErrInvalidToken
}
