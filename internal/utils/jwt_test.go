package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	access, err := NewAccessToken(testSecret, 42, 60)
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), access.Exp, 5*time.Second)

	uid, err := ParseAccessToken(testSecret, access.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	access, err := NewAccessToken(testSecret, 7, 60)
	require.NoError(t, err)

	_, err = ParseAccessToken("a-different-secret", access.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenExpired(t *testing.T) {
	access, err := NewAccessToken(testSecret, 7, -1)
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, access.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "not.a.jwt", "abcdef"} {
		_, err := ParseAccessToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestNewVerificationToken(t *testing.T) {
	a, err := NewVerificationToken()
	require.NoError(t, err)
	b, err := NewVerificationToken()
	require.NoError(t, err)

	assert.Len(t, a, 32) // 16 random bytes hex-encoded
	assert.NotEqual(t, a, b)
}
