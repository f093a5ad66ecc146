package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", 7*24*time.Hour)

	signed, expiresAt, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	userID, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", -1*time.Second)

	signed, _, err := svc.Issue("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", time.Hour)

	signed, _, err := svc.Issue("user-123")
	require.NoError(t, err)

	// Flip one character anywhere in the token
	for _, i := range []int{0, len(signed) / 2, len(signed) - 1} {
		tampered := []byte(signed)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}

		_, err = svc.Verify(string(tampered))
		assert.ErrorIs(t, err, ErrInvalidToken, "index %d", i)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, _, err := NewService("secret-a", time.Hour).Issue("user-123")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "xxxx"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
