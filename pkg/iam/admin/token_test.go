package admin

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenServiceDisabledWithoutSecret(t *testing.T) {
	assert.Nil(t, NewTokenService("", time.Hour))
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)

	token, expiresAt, err := svc.Issue()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ScopeAdmin, claims.Scope)
}

func TestVerifyRejects(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)

	t.Run("other secret", func(t *testing.T) {
		token, _, err := NewTokenService("different", time.Hour).Issue()
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenService("s3cret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, err := past.Issue()
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("wrong scope", func(t *testing.T) {
		claims := Claims{
			Scope: "jobs:read",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   tokenSubject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.Error(t, err)
	})
}
