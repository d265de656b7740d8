package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// AuthService checks the shared admin password and issues session tokens.
type AuthService struct {
	passwordHash []byte
	tokens       *TokenService
	logger       *slog.Logger
}

// NewAuthService keeps only a bcrypt hash in memory. When hash is empty the
// plain password is hashed once here.
func NewAuthService(password, hash string, tokens *TokenService, logger *slog.Logger) (*AuthService, error) {
	return newAuthService(password, hash, bcrypt.DefaultCost, tokens, logger)
}

func newAuthService(password, hash string, cost int, tokens *TokenService, logger *slog.Logger) (*AuthService, error) {
	var digest []byte
	switch {
	case hash != "":
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("admin password hash is not bcrypt: %w", err)
		}
		digest = []byte(hash)
	case password != "":
		var err error
		digest, err = bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	default:
		return nil, fmt.Errorf("admin password is not configured")
	}

	return &AuthService{passwordHash: digest, tokens: tokens, logger: logger}, nil
}

// Login compares password in constant time and returns a fresh session token.
func (s *AuthService) Login(ctx context.Context, password string) (string, *domain.AdminSession, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("Admin login rejected")
		return "", nil, domain.ErrInvalidPassword
	}

	token, session, err := s.tokens.IssueSession()
	if err != nil {
		return "", nil, err
	}
	s.logger.Info("Admin logged in", slog.String("session", session.ID))
	return token, session, nil
}

// Authenticate resolves a session cookie value.
func (s *AuthService) Authenticate(token string) (*domain.AdminSession, error) {
	return s.tokens.VerifySession(token)
}
