// Package tokens issues and verifies the HS256 access tokens used by the
// bearer middleware. Claims: sub carries the email, id the user id, jti a
// fresh identifier so individual tokens can be revoked.
package tokens

import (
	"errors"
	"time"

	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RevocationKey is the cache key a revoked token id is stored under.
func RevocationKey(jti string) string { return "revoked_token:" + jti }

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func Sign(secret []byte, userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

// Verify parses and validates a raw token. Expired or malformed tokens come
// back as Unauthorized.
func Verify(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.Unauthorized("token has expired")
		}
		return nil, apperr.Unauthorized("invalid token")
	}
	if !token.Valid {
		return nil, apperr.Unauthorized("invalid token")
	}
	if claims.UserID == "" || claims.Subject == "" {
		return nil, apperr.Unauthorized("invalid token payload")
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apperr.Unauthorized("invalid token payload")
	}
	return claims, nil
}
