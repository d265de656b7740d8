package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// SessionVerifier resolves a session token to the admin session it encodes.
type SessionVerifier interface {
	Authenticate(token string) (*domain.AdminSession, error)
}

type AuthMiddleware struct {
	Verifier   SessionVerifier
	CookieName string
	Logger     *slog.Logger
}

func NewAuthMiddleware(verifier SessionVerifier, cookieName string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{Verifier: verifier, CookieName: cookieName, Logger: logger}
}

// RequireSession rejects requests without a valid admin session with 401.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			unauthorized(w, "Unauthorized")
			return
		}

		session, err := m.Verifier.Authenticate(token)
		if err != nil {
			m.Logger.Warn("Rejected admin session", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
			unauthorized(w, "Session expired, please log in again")
			return
		}

		ctx := context.WithValue(r.Context(), domain.SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFrom returns the admin session stored by RequireSession.
func SessionFrom(ctx context.Context) (*domain.AdminSession, bool) {
	s, ok := ctx.Value(domain.SessionContextKey).(*domain.AdminSession)
	return s, ok
}

func (m *AuthMiddleware) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.CookieName); err == nil {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
