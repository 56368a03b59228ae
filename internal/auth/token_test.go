package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/tailoring-webclient/internal/auth"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "1", "exp": exp.Unix()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("not-our-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenInspector_Expired(t *testing.T) {
	t.Parallel()

	inspector := auth.NewTokenInspector()
	now := time.Now()

	assert.True(t, inspector.Expired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, inspector.Expired(signedToken(t, now.Add(time.Hour)), now))
}

func TestTokenInspector_OpaqueTokensAreNotJudged(t *testing.T) {
	t.Parallel()

	inspector := auth.NewTokenInspector()
	now := time.Now()

	// The client cannot decide anything about non-JWT or claim-less
	// tokens; the platform stays the authority.
	assert.False(t, inspector.Expired("abc123", now))
	assert.False(t, inspector.Expired("", now))

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
	signed, err := noExp.SignedString([]byte("whatever"))
	require.NoError(t, err)
	assert.False(t, inspector.Expired(signed, now))
}
