package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hostkeeper/keeper/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer(config.ServerConfig{JWTSecret: "s3cret", TokenDurationHr: 1})
	require.True(t, issuer.Enabled())

	token, claims, err := issuer.Issue("cli")
	require.NoError(t, err)
	assert.Equal(t, "cli", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "cli", got.ClientID)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	a := NewIssuer(config.ServerConfig{JWTSecret: "one"})
	b := NewIssuer(config.ServerConfig{JWTSecret: "two"})
	token, _, err := a.Issue("cli")
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewIssuer(config.ServerConfig{JWTSecret: "s3cret"})
	claims := Claims{ClientID: "cli", RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "keeper",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestDisabledWithoutSecret(t *testing.T) {
	issuer := NewIssuer(config.ServerConfig{})
	assert.False(t, issuer.Enabled())
	_, _, err := issuer.Issue("cli")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}
