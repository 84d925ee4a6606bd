package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler-api/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
	assert.True(t, auth.CheckPassword(hash, "pw1"))
	assert.False(t, auth.CheckPassword(hash, "pw2"))
}

func TestIsHashed(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, auth.IsHashed(hash))
	assert.False(t, auth.IsHashed("secret"))
	assert.False(t, auth.IsHashed(""))
	assert.False(t, auth.IsHashed("plain-text-that-mentions-$2a$-later"))
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("uid-1", "user@example.com", "secret")
	require.NoError(t, err)

	claims, err := auth.ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)

	// expiry is ~7 days out
	diff := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, diff, 7*24*time.Hour-time.Minute)
	assert.Less(t, diff, 7*24*time.Hour+time.Minute)
}

func TestParseTokenRejections(t *testing.T) {
	tok, err := auth.MakeToken("uid", "u@e.com", "secret")
	require.NoError(t, err)

	_, err = auth.ParseToken(tok, "wrong-secret")
	assert.Error(t, err)

	_, err = auth.ParseToken("not.a.token", "secret")
	assert.Error(t, err)
}
