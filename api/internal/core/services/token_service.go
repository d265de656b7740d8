package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

const (
	sessionTokenType = "admin_session"
	sessionIssuer    = "stealthnet-site"

	// SessionTTL is how long an admin login stays valid.
	SessionTTL = 12 * time.Hour
)

// SessionClaims is the payload of the admin session cookie.
type SessionClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// IssueSession mints a signed admin session token.
func (s *TokenService) IssueSession() (string, *domain.AdminSession, error) {
	now := s.now()
	session := &domain.AdminSession{
		ID:        uuid.New().String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(SessionTTL),
	}

	claims := SessionClaims{
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    sessionIssuer,
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, session, nil
}

// VerifySession validates signature, expiry and token type.
func (s *TokenService) VerifySession(tokenString string) (*domain.AdminSession, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(sessionIssuer))
	if err != nil {
		return nil, fmt.Errorf("invalid token signature or expired: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != sessionTokenType {
		return nil, fmt.Errorf("invalid token type: expected %s", sessionTokenType)
	}

	session := &domain.AdminSession{ID: claims.ID}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
