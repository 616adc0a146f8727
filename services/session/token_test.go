package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	t.Run("expired claim", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
		assert.True(t, TokenExpired(token))
	})

	t.Run("future claim", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		assert.False(t, TokenExpired(token))
	})

	t.Run("no exp claim", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "42"})
		assert.False(t, TokenExpired(token))
	})

	t.Run("opaque token is never expired locally", func(t *testing.T) {
		assert.False(t, TokenExpired("a-plain-opaque-token"))
		assert.False(t, TokenExpired(""))
	})
}
