// Package token issues and validates signed, time-bounded session tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/focusflow/backend/internal/errs"
)

// DefaultTTL is the session lifetime used when no override is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Service issues HS256 JWTs and validates them. It is stateless: tokens are
// never persisted and carry their own expiry.
type Service struct {
	signKey []byte
	ttl     time.Duration
}

// NewService constructs a token service. A non-positive ttl falls back to DefaultTTL.
func NewService(signKey []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{signKey: signKey, ttl: ttl}
}

// Issue creates a signed token with the user as subject and returns it with
// its expiry instant.
func (s *Service) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// Validate parses raw, verifies the signature and expiry, and returns the
// subject. Failures are errs.ErrExpiredToken for a well-signed token past
// its expiry and errs.ErrInvalidToken for everything else.
func (s *Service) Validate(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, errs.ErrExpiredToken
		}
		return uuid.Nil, errs.ErrInvalidToken
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.ErrInvalidToken
	}
	return id, nil
}
