package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedSecret(t *testing.T) {
	a := NewSharedSecret("123456")

	tests := []struct {
		in   string
		want bool
	}{
		{"123456", true},
		{"  123456\n", true},
		{"1234567", false},
		{"12345", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Verify(tt.in), "Verify(%q)", tt.in)
	}
}

func TestSharedSecretEmptyNeverMatches(t *testing.T) {
	assert.False(t, NewSharedSecret("").Verify(""))
}

func TestTokenIssuer(t *testing.T) {
	issuer, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)

	token, exp, err := issuer.Issue()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
	assert.NoError(t, issuer.Validate(token))

	assert.ErrorIs(t, issuer.Validate("not-a-token"), ErrInvalidToken)
	assert.ErrorIs(t, issuer.Validate(token+"x"), ErrInvalidToken)
}

func TestTokenFromAnotherProcessIsRejected(t *testing.T) {
	first, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)
	second, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)

	token, _, err := first.Issue()
	require.NoError(t, err)

	assert.ErrorIs(t, second.Validate(token), ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	issuer, err := NewTokenIssuer(time.Minute)
	require.NoError(t, err)

	start := time.Now()
	issuer.now = func() time.Time { return start }
	token, _, err := issuer.Issue()
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(2 * time.Minute) }
	assert.ErrorIs(t, issuer.Validate(token), ErrInvalidToken)
}
