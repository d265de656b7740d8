package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/middleware"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// SessionCookieName carries the signed admin session.
const SessionCookieName = "stealthnet_admin_session"

type LoginRequest struct {
	Password string `json:"password" validate:"max=256"`
}

// Authenticator is the slice of services.AuthService the handler needs.
type Authenticator interface {
	Login(ctx context.Context, password string) (string, *domain.AdminSession, error)
}

type AuthHandler struct {
	Service      Authenticator
	SecureCookie bool
}

func NewAuthHandler(service Authenticator, secureCookie bool) *AuthHandler {
	return &AuthHandler{Service: service, SecureCookie: secureCookie}
}

// Login handles POST /api/admin/auth
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		HandleError(w, r, err)
		return
	}

	token, session, err := h.Service.Login(r.Context(), req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles POST /api/admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Session handles GET /api/admin/session. It sits behind the session
// middleware, so reaching it means the cookie is valid.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "expiresAt": session.ExpiresAt})
}
