package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/pkg/logger"
)

const issuer = "keeper"

var (
	ErrAuthDisabled = errors.New("api authentication is disabled")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims represents JWT token claims
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 API tokens with the configured server secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(cfg config.ServerConfig) *Issuer {
	hr := cfg.TokenDurationHr
	if hr <= 0 {
		logger.Logger(context.Background()).Debug().Msgf("invalid token duration hr %d, defaulting to 24 hours", hr)
		hr = 24
	}
	return &Issuer{secret: []byte(cfg.JWTSecret.Value()), ttl: time.Duration(hr) * time.Hour}
}

// Enabled is false when no secret is configured; the API is then open to local callers.
func (i *Issuer) Enabled() bool {
	return len(i.secret) > 0
}

func (i *Issuer) Issue(clientID string) (string, Claims, error) {
	if !i.Enabled() {
		return "", Claims{}, ErrAuthDisabled
	}
	now := time.Now()
	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   clientID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(i.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("failed to sign JWT token: %v", err)
	}
	return tokenStr, claims, nil
}

func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	if !i.Enabled() {
		return nil, ErrAuthDisabled
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
