package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	verifier := NewJWTVerifier(testSecret)
	verifier.now = func() time.Time { return now }

	valid := Claims{
		Email: "night@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "4f1c2d9e-1111-4c3b-9a7e-2b6f0d5c8e01",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	t.Run("valid token", func(t *testing.T) {
		identity, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, testSecret, valid))
		require.NoError(t, err)
		assert.Equal(t, valid.Subject, identity.UserID)
		assert.Equal(t, "night@example.com", identity.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, testSecret, expired))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing expiration", func(t *testing.T) {
		noExp := valid
		noExp.ExpiresAt = nil
		_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, testSecret, noExp))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, "another-secret", valid))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodHS512, testSecret, valid))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		anonymous := valid
		anonymous.Subject = ""
		_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, testSecret, anonymous))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty and garbage", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidToken)
		_, err = verifier.Verify(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewVerifierPrefersSecret(t *testing.T) {
	verifier, err := NewVerifier(testSecret, "", "")
	require.NoError(t, err)
	assert.IsType(t, &JWTVerifier{}, verifier)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer   abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := BearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}
