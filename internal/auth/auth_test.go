package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	hash, err := m.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, m.CheckPassword("correct horse battery staple", hash))
	assert.False(t, m.CheckPassword("wrong password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	_, err := m.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	token, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", -time.Minute)

	token, err := m.GenerateToken(42)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
