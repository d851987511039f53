package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

// Token types carried in Claims.TokenType
const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

// clockSkew tolerated on exp/iat between instances
const clockSkew = 30 * time.Second

// Claims keeps exp and iat in RegisteredClaims only.
type Claims struct {
	MemberID  string `json:"member_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager interface {
	GenerateAccessToken(memberID string, email string) (string, error)
	GenerateRefreshToken(memberID string, email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// JWTManager issues and verifies HS256 tokens for API consumers
type JWTManager struct {
	secret []byte
	issuer string
	ttl    map[string]time.Duration
	parser *jwt.Parser
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		issuer: cfg.App.Name,
		ttl: map[string]time.Duration{
			ACCESS:  cfg.JWT.Expiry,
			REFRESH: cfg.JWT.RefreshExpiry,
		},
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
			jwt.WithIssuer(cfg.App.Name),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

func (m *JWTManager) GenerateAccessToken(memberID, email string) (string, error) {
	return m.issue(memberID, email, ACCESS)
}

func (m *JWTManager) GenerateRefreshToken(memberID, email string) (string, error) {
	return m.issue(memberID, email, REFRESH)
}

func (m *JWTManager) issue(memberID, email, tokenType string) (string, error) {
	now := time.Now()

	claims := Claims{
		MemberID:  memberID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   memberID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl[tokenType])),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// ValidateToken verifies signature, issuer and expiry. The caller checks TokenType.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	if claims.MemberID == "" || claims.MemberID != claims.Subject {
		return nil, ErrInvalidClaims
	}
	switch claims.TokenType {
	case ACCESS, REFRESH:
	default:
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
