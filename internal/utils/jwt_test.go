package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "fanbase"
)

func TestGenerateJWTToken(t *testing.T) {
	t.Run("round trip preserves the user ID", func(t *testing.T) {
		token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
		require.NoError(t, err)
		require.NotEmpty(t, token.SignedString)
		assert.Equal(t, int64(42), token.UserID)

		parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, int64(42), parsed.UserID)
	})

	t.Run("invalid params are rejected", func(t *testing.T) {
		_, err := GenerateJWTToken("", 42, time.Hour, testSignKey)
		assert.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, 42, 0, testSignKey)
		assert.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, 42, time.Hour, "")
		assert.Error(t, err)
	})
}

func TestValidateAndParseJWTToken(t *testing.T) {
	t.Run("expired token reports jwt.ErrTokenExpired", func(t *testing.T) {
		token, err := GenerateJWTToken(testIssuer, 42, -time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong sign key is rejected", func(t *testing.T) {
		token, err := GenerateJWTToken(testIssuer, 42, time.Hour, "other-key")
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		token, err := GenerateJWTToken("someone-else", 42, time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.jwt", testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("non-numeric subject is rejected", func(t *testing.T) {
		claims := &jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
		assert.Error(t, err)
	})
}
