package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestIssueVerify(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret123", "book-manager", time.Hour).WithClock(fixedClock(now))

	tok, exp, err := tm.Issue("admin")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	username, err := tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret123", "book-manager", time.Hour).WithClock(fixedClock(now))
	tok, _, err := tm.Issue("admin")
	require.NoError(t, err)

	tm.WithClock(fixedClock(now.Add(2 * time.Hour)))
	_, err = tm.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyInvalid(t *testing.T) {
	tm := NewTokenManager("secret123", "book-manager", time.Hour)
	other := NewTokenManager("another-secret", "book-manager", time.Hour)
	foreign, _, err := other.Issue("admin")
	require.NoError(t, err)

	wrongIssuer, _, err := NewTokenManager("secret123", "someone-else", time.Hour).Issue("admin")
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "book-manager",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret123"))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": foreign,
		"wrong issuer": wrongIssuer,
		"no username":  noUser,
		"alg none":     noneAlg,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Verify(tok)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestVerifyEmpty(t *testing.T) {
	_, err := NewTokenManager("s", "i", time.Hour).Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestExpiresIn(t *testing.T) {
	cases := map[time.Duration]string{
		time.Hour:               "1h",
		2 * time.Hour:           "2h",
		30 * time.Minute:        "30m",
		90 * time.Minute:        "90m",
		45 * time.Second:        "45s",
		1500 * time.Millisecond: "1.5s",
	}
	for ttl, want := range cases {
		assert.Equal(t, want, NewTokenManager("s", "i", ttl).ExpiresIn())
	}
}

func TestMatchPassword(t *testing.T) {
	assert.True(t, MatchPassword("secret1", "secret1"))
	assert.False(t, MatchPassword("secret1", "Secret1"))
	assert.False(t, MatchPassword("secret1", "secret1 "))

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, IsHashed(hash))
	assert.True(t, MatchPassword(hash, "secret1"))
	assert.False(t, MatchPassword(hash, "wrong-one"))
}
