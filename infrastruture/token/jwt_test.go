package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := newSecret(t)
	svc, err := NewJwtService(secretKey, "maze-api")
	require.NoError(t, err)

	t.Run("Empty secret", func(t *testing.T) {
		_, err := NewJwtService("", "maze-api")
		assert.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("Issue and Decode valid token", func(t *testing.T) {
		token, err := svc.Issue("cli", 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "cli", claims["sub"])
		assert.Equal(t, "maze-api", claims["iss"])
	})

	t.Run("Reserved claims are overwritten", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"iss": "someone-else", "role": "admin"}, time.Minute)
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "maze-api", claims["iss"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("Non-positive lifetime", func(t *testing.T) {
		_, err := svc.Issue("cli", 0)
		assert.ErrorIs(t, err, ErrNonPositiveTTL)
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"sub": "cli"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other, err := NewJwtService(newSecret(t), "maze-api")
		require.NoError(t, err)
		token, err := other.Issue("cli", time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other, err := NewJwtService(secretKey, "elsewhere")
		require.NoError(t, err)
		token, err := other.Issue("cli", time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrIssuerMismatch)
	})

	t.Run("Decode unsigned token", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"iss": "maze-api",
			"exp": time.Now().Add(time.Minute).Unix(),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrSigningMethod)
	})
}
