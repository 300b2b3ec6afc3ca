// Package authtest signs subscriber tokens for tests. The service itself only
// verifies tokens; they are issued by the email alert API.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token returns an HS256 token for subscriberID that expires after ttl.
// A negative ttl yields an already expired token.
func Token(t testing.TB, secret []byte, subscriberID string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subscriberID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign subscriber token: %v", err)
	}
	return signed
}
