package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken(testSecret, "user-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken(testSecret, "user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := signToken([]byte(testSecret), "user-1", "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := NewResetToken(testSecret, "old-hash", "user-1", "alice@example.com")
	require.NoError(t, err)

	claims, err := ParseResetToken(testSecret, "old-hash", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestResetTokenDiesWithPasswordHash(t *testing.T) {
	token, err := NewResetToken(testSecret, "old-hash", "user-1", "alice@example.com")
	require.NoError(t, err)

	// Valid while the hash is unchanged.
	_, err = ParseResetToken(testSecret, "old-hash", token)
	require.NoError(t, err)

	// After the reset rewrites the hash, the same token fails verification.
	_, err = ParseResetToken(testSecret, "new-hash", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenNotAcceptedAsSessionToken(t *testing.T) {
	token, err := NewResetToken(testSecret, "hash", "user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
