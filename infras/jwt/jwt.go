package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims mirrors what the scheduling backend puts into its access tokens.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Inspector reads backend-issued tokens. The backend owns the signing key, so the
// portal never verifies signatures; it only needs the expiry to drop stale sessions.
type Inspector interface {
	Inspect(token string) (*Claims, error)
	ExpiresAt(token string, now time.Time) (time.Time, error)
}

type inspector struct {
	parser *jwt.Parser
}

// New creates a new token inspector
func New() Inspector {
	return &inspector{
		parser: jwt.NewParser(),
	}
}

// Inspect decodes the claims without verifying the signature.
func (i *inspector) Inspect(token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

// ExpiresAt returns the token's exp claim, or the zero time when the token carries none.
// A token already past its expiry yields ErrExpiredToken.
func (i *inspector) ExpiresAt(token string, now time.Time) (time.Time, error) {
	claims, err := i.Inspect(token)
	if err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}

	expiry := claims.ExpiresAt.Time
	if !now.Before(expiry) {
		return expiry, ErrExpiredToken
	}

	return expiry, nil
}
