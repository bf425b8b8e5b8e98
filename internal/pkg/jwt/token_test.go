package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return token
}

func TestParseUnverified(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, Claims{
		GroomerID: 7,
		Phone:     "+919876543210",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	claims, err := ParseUnverified(token)

	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.GroomerID)
	assert.Equal(t, "+919876543210", claims.Phone)
	assert.True(t, exp.Equal(claims.ExpiresAt.Time))
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{
			name: "Future expiry",
			token: signToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
			expected: false,
		},
		{
			name: "Past expiry",
			token: signToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
			expected: true,
		},
		{
			name:     "No exp claim",
			token:    signToken(t, jwt.RegisteredClaims{Subject: "7"}),
			expected: false,
		},
		{
			name:     "Opaque token",
			token:    "3f9a1c0e-opaque-session",
			expected: false,
		},
		{
			name:     "Empty token",
			token:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExpired(tt.token, now))
		})
	}
}

func TestExpiresAt_Opaque(t *testing.T) {
	_, ok := ExpiresAt("not-a-jwt")
	assert.False(t, ok)
}
