package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the subset of backend token claims the client reads
type Claims struct {
	GroomerID int64  `json:"groomerId,omitempty"`
	Phone     string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// ParseUnverified decodes a bearer token without checking its signature.
// The signing key lives on the backend; the client only inspects claims.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt returns the exp claim of a JWT. ok is false for opaque tokens
// and tokens without exp.
func ExpiresAt(tokenString string) (time.Time, bool) {
	claims, err := ParseUnverified(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// IsExpired reports whether the token carries an exp claim before now
func IsExpired(tokenString string, now time.Time) bool {
	exp, ok := ExpiresAt(tokenString)
	return ok && !now.Before(exp)
}
