package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTSessionsRoundTrip(t *testing.T) {
	sessions := NewJWTSessions("test-secret", time.Hour)

	token, err := sessions.IssueToken("alice")
	require.NoError(t, err)

	username, err := sessions.FindUsernameWithToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestJWTSessionsRejectsGarbage(t *testing.T) {
	sessions := NewJWTSessions("test-secret", time.Hour)

	_, err := sessions.FindUsernameWithToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTSessionsRejectsExpiredToken(t *testing.T) {
	sessions := NewJWTSessions("test-secret", -time.Minute)

	token, err := sessions.IssueToken("alice")
	require.NoError(t, err)

	_, err = sessions.FindUsernameWithToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTSessionsRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTSessions("secret-a", time.Hour)
	verifier := NewJWTSessions("secret-b", time.Hour)

	token, err := issuer.IssueToken("alice")
	require.NoError(t, err)

	_, err = verifier.FindUsernameWithToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
