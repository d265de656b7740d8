package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/services"
)

const (
	testSecret = "super-secret-key-for-testing-purposes-1234567890"
)

func TestTokenService_IssueSession(t *testing.T) {
	tokenService := services.NewTokenService(testSecret)

	tokenString, session, err := tokenService.IssueSession()

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)

	token, err := jwt.ParseWithClaims(tokenString, &services.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*services.SessionClaims)
	require.True(t, ok)

	assert.Equal(t, "admin_session", claims.TokenType)
	assert.Equal(t, "stealthnet-site", claims.Issuer)
	assert.Equal(t, session.ID, claims.ID)

	expectedExp := time.Now().Add(services.SessionTTL)
	assert.WithinDuration(t, expectedExp, claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_VerifySession(t *testing.T) {
	tokenService := services.NewTokenService(testSecret)
	tokenString, issued, err := tokenService.IssueSession()
	require.NoError(t, err)

	t.Run("Valid Session", func(t *testing.T) {
		session, err := tokenService.VerifySession(tokenString)
		require.NoError(t, err)
		assert.Equal(t, issued.ID, session.ID)
		assert.WithinDuration(t, issued.ExpiresAt, session.ExpiresAt, time.Second)
	})

	t.Run("Invalid: Wrong Secret", func(t *testing.T) {
		otherService := services.NewTokenService("wrong-secret-key")
		otherToken, _, _ := otherService.IssueSession()

		session, err := tokenService.VerifySession(otherToken)
		assert.Error(t, err)
		assert.Nil(t, session)
		assert.Contains(t, err.Error(), "signature is invalid")
	})

	t.Run("Invalid: Wrong Token Type", func(t *testing.T) {
		claims := services.SessionClaims{
			TokenType: "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "stealthnet-site",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		session, err := tokenService.VerifySession(forged)
		assert.Error(t, err)
		assert.Nil(t, session)
		assert.Contains(t, err.Error(), "invalid token type")
	})

	t.Run("Invalid: Expired", func(t *testing.T) {
		claims := services.SessionClaims{
			TokenType: "admin_session",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "stealthnet-site",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tokenService.VerifySession(expired)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Invalid: Malformed Token", func(t *testing.T) {
		session, err := tokenService.VerifySession("not.a.valid.token")
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}
